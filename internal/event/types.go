// internal/event/types.go
package event

// Типы событий ввода
const (
	ControlPressed  EventType = "ControlPressed"  // Орган управления нажат, Data — input.Control
	ControlReleased EventType = "ControlReleased" // Орган управления отпущен, Data — input.Control
)
