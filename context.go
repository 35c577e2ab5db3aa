package vault

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

type contextKey int // local to the vault module

const (
	contextKeyLogger contextKey = iota
	contextKeySigners
	contextKeyTxID
)

// DefaultLogger is used for all context that have not
// set anything themselves
var DefaultLogger = log.NewNopLogger()

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithSigners stores the keys whose signatures were verified for the
// transaction being processed.
func WithSigners(ctx Context, signers []Pubkey) Context {
	set := make(map[Pubkey]bool, len(signers))
	for _, s := range signers {
		set[s] = true
	}
	return context.WithValue(ctx, contextKeySigners, set)
}

// GetSigners returns the verified signers, in no particular order.
func GetSigners(ctx Context) []Pubkey {
	set, _ := ctx.Value(contextKeySigners).(map[Pubkey]bool)
	signers := make([]Pubkey, 0, len(set))
	for s := range set {
		signers = append(signers, s)
	}
	return signers
}

// IsSigner returns true if pk signed the transaction being processed.
func IsSigner(ctx Context, pk Pubkey) bool {
	set, _ := ctx.Value(contextKeySigners).(map[Pubkey]bool)
	return set[pk]
}

// WithTxID stores the id of the transaction being processed.
func WithTxID(ctx Context, id []byte) Context {
	return context.WithValue(ctx, contextKeyTxID, id)
}

// GetTxID returns the id of the transaction being processed.
func GetTxID(ctx Context) ([]byte, bool) {
	id, ok := ctx.Value(contextKeyTxID).([]byte)
	return id, ok
}
