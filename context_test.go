package vault_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/vault"
)

func TestLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, vault.DefaultLogger, vault.GetLogger(bg))

	var out bytes.Buffer
	ctx := vault.WithLogger(bg, log.NewTMLogger(&out))
	ctx = vault.WithLogInfo(ctx, "program", "escrow")
	vault.GetLogger(ctx).Info("Instruction: InitEscrow")

	assert.True(t, strings.Contains(out.String(), "program=escrow"), out.String())
	assert.True(t, strings.Contains(out.String(), "Instruction: InitEscrow"), out.String())
}

func TestSigners(t *testing.T) {
	alice, bob := vault.GenerateKeypair().Pubkey(), vault.GenerateKeypair().Pubkey()
	bg := context.Background()
	assert.False(t, vault.IsSigner(bg, alice))
	assert.Len(t, vault.GetSigners(bg), 0)

	ctx := vault.WithSigners(bg, []vault.Pubkey{alice})
	assert.True(t, vault.IsSigner(ctx, alice))
	assert.False(t, vault.IsSigner(ctx, bob))
	assert.Equal(t, []vault.Pubkey{alice}, vault.GetSigners(ctx))
}

func TestTxID(t *testing.T) {
	bg := context.Background()
	_, ok := vault.GetTxID(bg)
	assert.False(t, ok)

	ctx := vault.WithTxID(bg, []byte{1, 2})
	id, ok := vault.GetTxID(ctx)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, id)
}
