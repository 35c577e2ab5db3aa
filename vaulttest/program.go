package vaulttest

import (
	"github.com/iov-one/vault"
)

// Program is a mock implementation of the vault.Program interface.
//
// Each call is recorded. If Fn is set it is called to do the actual work,
// otherwise Err is returned.
type Program struct {
	Fn  vault.ProgramFunc
	Err error

	calls []Call
}

// Call is what a program received.
type Call struct {
	ProgramID vault.Pubkey
	Keys      []vault.Pubkey
	Input     []byte
}

var _ vault.Program = (*Program)(nil)

func (p *Program) Process(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, accounts []*vault.AccountInfo, input []byte) error {
	keys := make([]vault.Pubkey, len(accounts))
	for i, a := range accounts {
		keys[i] = a.Key
	}
	p.calls = append(p.calls, Call{ProgramID: programID, Keys: keys, Input: input})
	if p.Fn != nil {
		return p.Fn(ctx, ic, programID, accounts, input)
	}
	return p.Err
}

// Calls returns every recorded call, in order.
func (p *Program) Calls() []Call {
	return p.calls
}

func (p *Program) CallCount() int {
	return len(p.calls)
}
