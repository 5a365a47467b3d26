package labtimetable

import "fmt"

// InvalidInputError is the single structural failure mode the core
// defines: a malformed course set. It fails the whole Schedule call
// before any search begins.
type InvalidInputError struct {
	Reason   string
	CourseID int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("labtimetable: invalid input: %s (course id %d)", e.Reason, e.CourseID)
}

// ErrInvalidInput lets callers check the error kind with errors.Is
// even though InvalidInputError itself carries the offending id.
var ErrInvalidInput = &InvalidInputError{Reason: "invalid course set"}

// Is implements errors.Is for InvalidInputError so that
// errors.Is(err, ErrInvalidInput) reports true for any *InvalidInputError,
// regardless of which course id or reason triggered it.
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}
