package runtime

import (
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Logging is a decorator to log transactions as they pass through
type Logging struct{}

var _ vault.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx, next vault.Handler) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)

	logger := vault.GetLogger(ctx).With(
		"duration", time.Since(start)/time.Microsecond,
		"instructions", len(tx.Instructions),
	)
	if err != nil {
		logger.Error("transaction failed", "err", err)
	} else {
		logger.Info("transaction processed", "changed", len(res.Changed))
	}
	return res, err
}

// Recovery is a decorator to recover from panics in programs,
// so we can log them as errors
type Recovery struct{}

var _ vault.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx, next vault.Handler) (_ *vault.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct{}

var _ vault.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Deliver runs next on a cache of the store and writes the cache only if
// next succeeded.
func (Savepoint) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx, next vault.Handler) (*vault.DeliverResult, error) {
	cstore, ok := store.(vault.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "savepoint requires a cacheable store")
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Signatures verifies every signature attached to a transaction and makes
// sure that every account an instruction marks as signer actually signed.
// The verified signers are passed on in the context.
type Signatures struct{}

var _ vault.Decorator = Signatures{}

// NewSignatures creates a Signatures decorator
func NewSignatures() Signatures {
	return Signatures{}
}

func (Signatures) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx, next vault.Handler) (*vault.DeliverResult, error) {
	signers, err := tx.Verify()
	if err != nil {
		return nil, err
	}
	ctx = vault.WithSigners(ctx, signers)
	for _, required := range tx.Signers() {
		if !vault.IsSigner(ctx, required) {
			return nil, errors.Wrapf(errors.ErrMissingSignature, "%s", required)
		}
	}
	return next.Deliver(ctx, store, tx)
}
