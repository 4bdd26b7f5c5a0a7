package reminders

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_MessageNamesKind(t *testing.T) {
	err := newError(KindPermission, "reminders access denied")
	if !strings.Contains(err.Error(), "PermissionError") {
		t.Errorf("Expected message to name the kind, got %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := wrapError(KindExecution, cause, "reader failed")
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped cause to be reachable via errors.Is")
	}
}

func TestKindOf_UnknownCoercesToExecution(t *testing.T) {
	if KindOf(fmt.Errorf("something odd")) != KindExecution {
		t.Error("Expected unknown errors to coerce to ExecutionError")
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	inner := newError(KindParse, "bad output")
	outer := fmt.Errorf("list reminders: %w", inner)
	if KindOf(outer) != KindParse {
		t.Errorf("Expected ParseError through wrapping, got %s", KindOf(outer))
	}
}
