// internal/input/control.go
package input

// Direction — направление поворота, как его видит модель руления
type Direction int

const (
	TurnRight Direction = -1
	Neutral   Direction = 0
	TurnLeft  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case Neutral:
		return "neutral"
	}
	return "unknown"
}

// Control — логический орган управления, к которому привязываются клавиши
type Control int

const (
	ControlNone Control = iota
	ControlTurnLeft
	ControlTurnRight
)

func (c Control) String() string {
	switch c {
	case ControlTurnLeft:
		return "turn_left"
	case ControlTurnRight:
		return "turn_right"
	}
	return "none"
}

// Direction возвращает направление, которое включает нажатие этого органа
func (c Control) Direction() Direction {
	switch c {
	case ControlTurnLeft:
		return TurnLeft
	case ControlTurnRight:
		return TurnRight
	}
	return Neutral
}

// IsTurn сообщает, относится ли орган к повороту
func (c Control) IsTurn() bool {
	return c == ControlTurnLeft || c == ControlTurnRight
}
