package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// Generic plumbing codes
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"

	// Game-rule codes. Engine preconditions fail with one of these before
	// any state is mutated.
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"
	CodeInsufficientFunds      Code = "INSUFFICIENT_FUNDS"
	CodeInsufficientMaterials  Code = "INSUFFICIENT_MATERIALS"
	CodeInsufficientQuantity   Code = "INSUFFICIENT_QUANTITY"
	CodePersistenceFailure     Code = "PERSISTENCE_FAILURE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether the error represents a rule precondition the
// caller can surface to the player, as opposed to an infrastructure fault.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidStateTransition, CodeInsufficientFunds,
		CodeInsufficientMaterials, CodeInsufficientQuantity,
		CodeInvalidArgument, CodeNotFound:
		return true
	default:
		return false
	}
}
