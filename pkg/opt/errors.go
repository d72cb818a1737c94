package opt

const absentMsg = "value is absent"

// UnwrapError is the panic payload used when a container is force-unwrapped
// in the wrong variant: Unwrap/Value/Expect on a None Option, Unwrap/Expect
// on an Err Result, UnwrapErr/ExpectErr on an Ok Result.
//
// Msg is either the caller-supplied message (Expect/ExpectErr), the default
// "value is absent" (Option), or the string form of the opposite payload
// (Result).
type UnwrapError struct {
	Msg string
}

func (e *UnwrapError) Error() string {
	return e.Msg
}
