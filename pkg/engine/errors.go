package engine

import "fmt"

// UnknownLogicError is returned when Build is asked for a logic name that
// has no registered pkg/logic.Logic.
type UnknownLogicError struct{ Name string }

func (e *UnknownLogicError) Error() string {
	return fmt.Sprintf("engine: unknown logic %q", e.Name)
}
