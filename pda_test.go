package vault

import (
	"bytes"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	upgradeableLoader = MustPubkey("BPFLoaderUpgradeab1e11111111111111111111111")
	seedPubkey        = MustPubkey("SeedPubey1111111111111111111111111111111111")
)

func TestCreateProgramAddress(t *testing.T) {
	cases := map[string]struct {
		seeds   [][]byte
		want    string
		wantErr *errors.Error
	}{
		"empty seed and one": {
			seeds: [][]byte{{}, {1}},
			want:  "BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe",
		},
		"utf8 seed": {
			seeds: [][]byte{[]byte("☉"), {0}},
			want:  "13yWmRpaTR4r5nAktwLqMpRNr28tnVUZw26rTvPSSB19",
		},
		"two words": {
			seeds: [][]byte{[]byte("Talking"), []byte("Squirrels")},
			want:  "2fnQrngrQT4SeLcdToJAD96phoEjNL2man2kfRLCASVk",
		},
		"pubkey seed": {
			seeds: [][]byte{seedPubkey[:], {1}},
			want:  "976ymqVnfE32QFe6NfGDctSvVa36LWnvYxhU6G2232YL",
		},
		"seed too long": {
			seeds:   [][]byte{bytes.Repeat([]byte{7}, MaxSeedLength+1)},
			wantErr: errors.ErrInvalidSeeds,
		},
		"max length seed is fine": {
			seeds: [][]byte{bytes.Repeat([]byte{1}, MaxSeedLength)},
		},
		"too many seeds": {
			seeds:   make([][]byte, MaxSeeds+1),
			wantErr: errors.ErrInvalidSeeds,
		},
		"result on the curve": {
			seeds:   [][]byte{[]byte("escrow"), {255}},
			wantErr: errors.ErrInvalidSeeds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := CreateProgramAddress(tc.seeds, upgradeableLoader)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.False(t, got.IsOnCurve())
			if tc.want != "" {
				assert.Equal(t, tc.want, got.String())
			}
		})
	}
}

func TestFindProgramAddress(t *testing.T) {
	seeds := [][]byte{[]byte("escrow")}

	pk, bump, err := FindProgramAddress(seeds, upgradeableLoader)
	require.NoError(t, err)
	// 255 and 254 are both on the curve for this program.
	assert.Equal(t, uint8(253), bump)
	assert.Equal(t, "2dR2RiByjHYzmdEWHx3BhdXvNaHh8etTzaFm4eYDSwgB", pk.String())

	again, againBump, err := FindProgramAddress(seeds, upgradeableLoader)
	require.NoError(t, err)
	assert.Equal(t, pk, again)
	assert.Equal(t, bump, againBump)

	direct, err := CreateProgramAddress([][]byte{[]byte("escrow"), {bump}}, upgradeableLoader)
	require.NoError(t, err)
	assert.Equal(t, pk, direct)

	_, _, err = FindProgramAddress(make([][]byte, MaxSeeds), upgradeableLoader)
	assert.True(t, errors.ErrInvalidSeeds.Is(err))

	_, _, err = FindProgramAddress([][]byte{make([]byte, MaxSeedLength+1)}, upgradeableLoader)
	assert.True(t, errors.ErrInvalidSeeds.Is(err))
}

func TestFindProgramAddressManyPrograms(t *testing.T) {
	for i := 0; i < 200; i++ {
		var program Pubkey
		program[0] = byte(i)
		program[31] = byte(i * 7)

		pk, bump, err := FindProgramAddress([][]byte{[]byte("vault")}, program)
		require.NoError(t, err)
		assert.False(t, pk.IsOnCurve())
		for b := 255; b > int(bump); b-- {
			_, err := CreateProgramAddress([][]byte{[]byte("vault"), {byte(b)}}, program)
			assert.Error(t, err, "bump %d skipped", b)
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	kp := GenerateKeypair()
	assert.True(t, kp.Pubkey().IsOnCurve())
	assert.False(t, IsOnCurve([]byte{1, 2, 3}))

	derived, _, err := FindProgramAddress([][]byte{[]byte("x")}, kp.Pubkey())
	require.NoError(t, err)
	assert.False(t, derived.IsOnCurve())
}
