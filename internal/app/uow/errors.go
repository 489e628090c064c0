package uow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotBegun is returned by Touch and Touched before Begin.
var ErrNotBegun = errors.New("uow: unit of work not begun")

// ErrAlreadyEnded is returned when End is called twice or a collection is
// used after End.
var ErrAlreadyEnded = errors.New("uow: unit of work already ended")

// PartialCommitError reports a commit pass that stopped at a failing
// collection. Committed lists the collections whose writes were already
// applied and are not rolled back.
type PartialCommitError struct {
	Failed    string
	Committed []string
	Err       error
}

func (e *PartialCommitError) Error() string {
	if len(e.Committed) == 0 {
		return fmt.Sprintf("uow: commit of %s failed: %v", e.Failed, e.Err)
	}
	return fmt.Sprintf("uow: commit of %s failed after committing [%s]: %v",
		e.Failed, strings.Join(e.Committed, ", "), e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }
