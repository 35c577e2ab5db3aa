/*
Package errors implements the error types used across vault.

Reuse the root errors declared in this package whenever possible. A program
that needs a custom failure (for example the escrow amount mismatch) declares
it with Register(code, description) in its own package, the same way the token
and escrow programs do. Codes are unique for the whole process and registering
a code twice panics at startup.

Create error instances with ErrXyz.New("...") / ErrXyz.Newf or
errors.Wrap(ErrXyz, "...") at the point of failure. The first wrap attaches a
stack trace; further wraps only add context.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context

	%s is just the error message
	%+v is the full stack trace

Code and Info translate any error into the numeric code and log message that
the runtime reports as a transaction result. Errors that were not created from
a registered root error are reported as internal errors.
*/
package errors
