package token

import (
	"github.com/iov-one/vault/errors"
)

// Token program errors use codes 100-199, the offset being the SPL token
// error number.
var (
	// ErrInvalidMint is returned when an account does not hold an
	// initialized mint.
	ErrInvalidMint = errors.Register(102, "invalid mint")

	// ErrMintMismatch is returned when two token accounts of different
	// mints are used together.
	ErrMintMismatch = errors.Register(103, "account not associated with this mint")

	// ErrOwnerMismatch is returned when the signing authority is not the
	// one stored in the account.
	ErrOwnerMismatch = errors.Register(104, "owner does not match")

	// ErrFixedSupply is returned when minting from a mint without an
	// authority.
	ErrFixedSupply = errors.Register(105, "fixed supply")

	// ErrNonNativeHasBalance is returned when closing an account that
	// still holds tokens.
	ErrNonNativeHasBalance = errors.Register(111, "non-native account can only be closed if its balance is zero")

	// ErrAuthorityTypeNotSupported is returned when the authority type
	// does not apply to the target account.
	ErrAuthorityTypeNotSupported = errors.Register(115, "authority type not supported")

	// ErrMintCannotFreeze is returned when the mint has no freeze
	// authority.
	ErrMintCannotFreeze = errors.Register(116, "mint cannot freeze accounts")

	// ErrAccountFrozen is returned when a frozen account is used.
	ErrAccountFrozen = errors.Register(117, "account is frozen")
)
