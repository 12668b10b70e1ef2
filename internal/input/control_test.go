package input

import "testing"

func TestControl_Direction(t *testing.T) {
	tests := []struct {
		name     string
		control  Control
		expected Direction
		isTurn   bool
	}{
		{name: "left", control: ControlTurnLeft, expected: TurnLeft, isTurn: true},
		{name: "right", control: ControlTurnRight, expected: TurnRight, isTurn: true},
		{name: "none", control: ControlNone, expected: Neutral, isTurn: false},
		{name: "out_of_range", control: Control(42), expected: Neutral, isTurn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.control.Direction(); got != tt.expected {
				t.Errorf("Direction() = %v, expected %v", got, tt.expected)
			}
			if got := tt.control.IsTurn(); got != tt.isTurn {
				t.Errorf("IsTurn() = %v, expected %v", got, tt.isTurn)
			}
		})
	}
}

func TestDirection_Values(t *testing.T) {
	if TurnLeft != 1 || TurnRight != -1 || Neutral != 0 {
		t.Fatalf("unexpected direction values: left=%d right=%d neutral=%d", TurnLeft, TurnRight, Neutral)
	}
	if TurnLeft.String() != "left" || TurnRight.String() != "right" || Neutral.String() != "neutral" {
		t.Errorf("unexpected names: %s %s %s", TurnLeft, TurnRight, Neutral)
	}
	if Direction(7).String() != "unknown" {
		t.Errorf("expected unknown for out of range direction, got %s", Direction(7))
	}
}
