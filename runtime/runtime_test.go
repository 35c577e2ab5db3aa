package runtime

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestAirdrop(t *testing.T) {
	rt, _ := newTestRuntime(t, nil)
	pk := vaulttest.NewPubkey()

	assert.Nil(t, rt.Airdrop(pk, 10))
	assert.Nil(t, rt.Airdrop(pk, 5))
	acc, err := rt.Account(pk)
	assert.Nil(t, err)
	assert.Equal(t, uint64(15), acc.Lamports)
	assert.Equal(t, vault.SystemProgramID, acc.Owner)

	assert.IsErr(t, errors.ErrOverflow, rt.Airdrop(pk, ^uint64(0)))
	acc, err = rt.Account(pk)
	assert.Nil(t, err)
	assert.Equal(t, uint64(15), acc.Lamports)
}

func TestDeploy(t *testing.T) {
	p := &vaulttest.Program{}
	rt, _ := newTestRuntime(t, map[string]vault.ProgramFunc{"probe": p.Process})
	id := vaulttest.NewPubkey()

	assert.Nil(t, rt.Deploy(id, "probe"))
	assert.IsErr(t, errors.ErrAlreadyInUse, rt.Deploy(id, "probe"))
	assert.IsErr(t, errors.ErrNotFound, rt.Deploy(vaulttest.NewPubkey(), "missing"))
	assert.IsErr(t, errors.ErrAccountModified, rt.Airdrop(id, 1))

	_, err := rt.ProcessTx(context.Background(), vault.NewTx(1, vault.Instruction{ProgramID: id, Data: []byte{9}}))
	assert.Nil(t, err)
	assert.Equal(t, 1, p.CallCount())
	assert.Equal(t, id, p.Calls()[0].ProgramID)

	programs, err := rt.Accounts(&vault.NativeLoaderID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(programs))
}

func TestRuntimeConfig(t *testing.T) {
	rt, _ := newTestRuntime(t, nil)
	rent, err := rt.Rent()
	assert.Nil(t, err)
	assert.Equal(t, vault.DefaultRent, rent)
}
