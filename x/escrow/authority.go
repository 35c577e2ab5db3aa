package escrow

import (
	"sync"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// AuthoritySeed is the label the program authority is derived from.
const AuthoritySeed = "escrow"

// Authority is the program address that controls locked deposits.
type Authority struct {
	Address vault.Pubkey
	Bump    uint8
}

// Seeds returns the seeds the program signs for the authority with.
func (a Authority) Seeds() [][]byte {
	return [][]byte{[]byte(AuthoritySeed), {a.Bump}}
}

// authorities caches derivations per program id. A derivation never
// changes, so entries are never evicted.
var authorities sync.Map

// FindAuthority returns the program authority of programID: the first
// address found for the seed with bumps tried from 255 down.
func FindAuthority(programID vault.Pubkey) (Authority, error) {
	if a, ok := authorities.Load(programID); ok {
		return a.(Authority), nil
	}
	addr, bump, err := vault.FindProgramAddress([][]byte{[]byte(AuthoritySeed)}, programID)
	if err != nil {
		return Authority{}, errors.Wrapf(err, "authority of %s", programID)
	}
	a := Authority{Address: addr, Bump: bump}
	authorities.Store(programID, a)
	return a, nil
}

// MustAuthority is FindAuthority that panics when no authority can be
// derived. Use it only with program ids known to work, as in tests.
func MustAuthority(programID vault.Pubkey) Authority {
	a, err := FindAuthority(programID)
	if err != nil {
		panic(err)
	}
	return a
}
