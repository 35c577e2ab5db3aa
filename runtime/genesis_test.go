package runtime

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestGenesisFile(t *testing.T) {
	gen, err := LoadGenesis("testdata/genesis.json")
	assert.Nil(t, err)

	r := NewRouter()
	r.RegisterBuiltin("escrow", &vaulttest.Program{})
	db := store.MemStore()
	assert.Nil(t, (&Initializer{Router: r}).FromGenesis(gen.AppOptions, db))

	conf, err := LoadConfig(db)
	assert.Nil(t, err)
	assert.Equal(t, 3, conf.MaxCallDepth)

	funded, err := LoadAccount(db, vault.MustPubkey("SeedPubey1111111111111111111111111111111111"))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000000000), funded.Lamports)

	program, err := r.Lookup(db, vault.MustPubkey("Escrow1111111111111111111111111111111111111"))
	assert.Nil(t, err)
	if program == nil {
		t.Fatal("escrow not deployed")
	}

	_, err = LoadGenesis("testdata/missing.json")
	assert.IsErr(t, errors.ErrInput, err)
}

func TestGenesisInitializer(t *testing.T) {
	a := vaulttest.SequenceKey(1).Pubkey()

	cases := map[string]struct {
		opts       string
		wantErr    *errors.Error
		wantErrors int
		wantConf   Config
	}{
		"empty genesis uses defaults": {
			opts:     `{}`,
			wantConf: DefaultConfig(),
		},
		"invalid configuration": {
			opts:    `{"conf": {"runtime": {"rent": {"lamports_per_byte_year": 0, "exemption_threshold": 2}, "max_call_depth": 1}}}`,
			wantErr: errors.ErrInput,
		},
		"all invalid entries are reported": {
			opts: `{
				"accounts": [
					{"pubkey": "` + a.String() + `", "lamports": 0},
					{"pubkey": "` + a.String() + `", "lamports": 5}
				],
				"programs": [{"id": "` + vaulttest.NewPubkey().String() + `", "builtin": "nope"}]
			}`,
			wantErr:    errors.ErrInvalidAmount,
			wantErrors: 3,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts vault.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.opts), &opts))

			db := store.MemStore()
			err := (&Initializer{Router: NewRouter()}).FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErrors > 0 {
				assert.Equal(t, tc.wantErrors, len(errors.Errors(err)))
			}
			if tc.wantErr == nil {
				conf, err := LoadConfig(db)
				assert.Nil(t, err)
				assert.Equal(t, tc.wantConf, conf)
			}
		})
	}
}

func TestChainInitializers(t *testing.T) {
	var calls int
	counter := initFunc(func(vault.Options, vault.KVStore) error {
		calls++
		return nil
	})
	failing := initFunc(func(vault.Options, vault.KVStore) error {
		return errors.ErrHuman
	})

	err := ChainInitializers(counter, failing, counter).FromGenesis(nil, store.MemStore())
	assert.IsErr(t, errors.ErrHuman, err)
	assert.Equal(t, 1, calls)
}

type initFunc func(vault.Options, vault.KVStore) error

func (f initFunc) FromGenesis(opts vault.Options, db vault.KVStore) error {
	return f(opts, db)
}
