package reservation

import "fmt"

// Error codes for the reservation flow. Every failure a caller can see is
// exactly one of these.
const (
	CodeNotFound        = "notFound"
	CodeAlreadyOccupied = "alreadyOccupied"
	CodeUnauthorized    = "unauthorized"
	CodeInvalidHours    = "invalidHours"
	CodeStorage         = "storageFailure"
)

// Error is a typed reservation failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrLotNotFound  = &Error{Code: CodeNotFound, Message: "parking lot not found"}
	ErrSlotNotFound = &Error{Code: CodeNotFound, Message: "slot not found in lot"}
	ErrSlotOccupied = &Error{Code: CodeAlreadyOccupied, Message: "slot just taken, pick another"}
	ErrUnauthorized = &Error{Code: CodeUnauthorized, Message: "caller identity required"}
	ErrInvalidHours = &Error{Code: CodeInvalidHours, Message: "hours must be between 1 and 24"}
)

func newStorageError(err error) *Error {
	return &Error{Code: CodeStorage, Message: err.Error()}
}
