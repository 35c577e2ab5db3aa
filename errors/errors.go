package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, "not found")

	// ErrInvalidInstruction is returned when instruction data cannot be
	// decoded by the program it is addressed to.
	ErrInvalidInstruction = Register(4, "invalid instruction data")

	// ErrInvalidAccountData is returned when an account holds data that is
	// malformed or does not match what the instruction requires, including
	// account identities that do not match stored references.
	ErrInvalidAccountData = Register(5, "invalid account data")

	// ErrAlreadyInUse is returned when an account that must be fresh was
	// already initialized.
	ErrAlreadyInUse = Register(6, "account already in use")

	// ErrHuman is returned when application reaches a code path which should not
	// ever be reached if the code was written as expected by the framework
	ErrHuman = Register(7, "coding error")

	// ErrUninitializedAccount is returned when an instruction operates on
	// an account that was never initialized or was already consumed.
	ErrUninitializedAccount = Register(8, "uninitialized account")

	// ErrInvalidState is returned when an object is in invalid state
	ErrInvalidState = Register(10, "invalid state")

	// ErrInsufficientFunds is returned when a balance is too small to
	// cover the requested amount.
	ErrInsufficientFunds = Register(12, "insufficient funds")

	// ErrInvalidAmount stands for invalid amount of whatever
	ErrInvalidAmount = Register(13, "invalid amount")

	// ErrInput stands for general input problems indication
	ErrInput = Register(14, "invalid input")

	// ErrNotRentExempt is returned when an account does not hold enough
	// lamports to persist its data indefinitely.
	ErrNotRentExempt = Register(15, "account not rent exempt")

	// ErrOverflow s returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrMissingSignature is returned when an account that must authorize
	// an instruction did not sign it.
	ErrMissingSignature = Register(17, "missing required signature")

	// ErrIncorrectProgramID is returned when an account is owned by a
	// different program than expected or a program id is unknown.
	ErrIncorrectProgramID = Register(18, "incorrect program id")

	// ErrNotEnoughAccountKeys is returned when an instruction does not
	// reference all accounts a program requires.
	ErrNotEnoughAccountKeys = Register(19, "not enough account keys")

	// ErrInvalidSeeds is returned when a program address cannot be
	// derived from the given seeds.
	ErrInvalidSeeds = Register(20, "invalid seeds")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(21, "database")

	// ErrAccountModified is returned when a program changes an account in
	// a way it is not allowed to.
	ErrAccountModified = Register(22, "illegal account modification")

	// ErrUnbalancedInstruction is returned when an instruction creates or
	// destroys lamports.
	ErrUnbalancedInstruction = Register(23, "sum of lamports changed")

	// ErrPrivilegeEscalation is returned when a cross-program invocation
	// asks for a signer or writable privilege the caller does not hold.
	ErrPrivilegeEscalation = Register(24, "privilege escalation")

	// ErrCallDepth is returned when cross-program invocations nest too
	// deep.
	ErrCallDepth = Register(25, "call depth exceeded")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but programs may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: {code: 1, desc: internalLog}, // Error code 1 is restricted for unregistered errors.
}

// Error represents a root error.
//
// Each instance created during the runtime should wrap one of the declared
// root errors. This allows error tests and returning all errors to the client
// in a safe manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered numeric code of this error.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//
//	e.New("my description")
//	Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide a Code method (ie. stdlib errors),
// it will be labeled as internal error.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap allows the standard library errors.Is and errors.As to walk the
// chain. The stack trace layer attached by the innermost Wrap does not
// unwrap itself, so it is stepped over.
func (e *wrappedError) Unwrap() error {
	if _, ok := e.parent.(stackTracer); ok {
		if c, ok := e.parent.(causer); ok {
			return c.Cause()
		}
	}
	return e.parent
}

// Format prints the full stack trace with %+v and the plain message
// otherwise.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType is a helper to augment an error with a corresponding type message
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
