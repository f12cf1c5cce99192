package doctext

import (
	"errors"
	"testing"
)

func TestOutOfRangeWrapsSentinel(t *testing.T) {
	txt := mustOf(t, "hello")
	_, err := txt.Slice(-1, 2)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Slice(-1,2) error does not wrap ErrOutOfRange: %v", err)
	}
}

func TestInvalidLineWrapsSentinel(t *testing.T) {
	txt := mustOf(t, "hello")
	_, err := txt.Line(99)
	if !errors.Is(err, ErrInvalidLine) {
		t.Errorf("Line(99) error does not wrap ErrInvalidLine: %v", err)
	}
}

func TestContractViolationWrapsSentinel(t *testing.T) {
	_, err := Of([]string{"a\nb"})
	if !errors.Is(err, ErrContractViolation) {
		t.Errorf("Of with embedded separator does not wrap ErrContractViolation: %v", err)
	}
}
