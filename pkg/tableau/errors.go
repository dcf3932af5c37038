package tableau

import "fmt"

// IllegalTableauStateError reports an attempt to violate one of the
// invariants in the package doc: appending to or ticking a node on a
// closed branch, branching from a closed branch, and so on.
type IllegalTableauStateError struct {
	Op string
}

func (e *IllegalTableauStateError) Error() string {
	return fmt.Sprintf("tableau: illegal state: cannot %s", e.Op)
}

// TimeoutExceededError reports that the engine driver aborted a build
// because its wall-clock budget elapsed before the tableau finished.
type TimeoutExceededError struct {
	LogicName string
}

func (e *TimeoutExceededError) Error() string {
	return fmt.Sprintf("tableau(%s): timeout exceeded before completion", e.LogicName)
}

// StepLimitExceededError reports that the engine driver aborted a build
// after reaching its configured maximum step count.
type StepLimitExceededError struct {
	LogicName string
	MaxSteps  int
}

func (e *StepLimitExceededError) Error() string {
	return fmt.Sprintf("tableau(%s): exceeded step limit of %d", e.LogicName, e.MaxSteps)
}
