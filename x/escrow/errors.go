package escrow

import (
	"github.com/iov-one/vault/errors"
)

// ErrExpectedAmountMismatch is returned when the amount a taker declares
// differs from the amount stored in the escrow record.
var ErrExpectedAmountMismatch = errors.Register(200, "expected amount mismatch")
