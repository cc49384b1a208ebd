package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPhase = errors.New("unknown phase")

// Phase is the state of a traffic light. The zero value is PhaseRed.
type Phase uint32

const (
	PhaseRed Phase = iota
	PhaseGreen
)

func (p Phase) Toggle() Phase {
	if p == PhaseRed {
		return PhaseGreen
	}

	return PhaseRed
}

func (p Phase) String() string {
	switch p {
	case PhaseRed:
		return "red"
	case PhaseGreen:
		return "green"
	default:
		return fmt.Sprintf("phase(%d)", uint32(p))
	}
}

func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return PhaseRed, nil
	case "green":
		return PhaseGreen, nil
	default:
		return PhaseRed, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
	}
}
