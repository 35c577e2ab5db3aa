package runtime

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

var accountPrefix = []byte("acct:")

// AccountKey returns the store key of the account.
func AccountKey(pk vault.Pubkey) []byte {
	key := make([]byte, 0, len(accountPrefix)+vault.PubkeyLength)
	key = append(key, accountPrefix...)
	return append(key, pk[:]...)
}

// pubkeyFromKey reverses AccountKey. It returns false for keys outside of
// the account bucket.
func pubkeyFromKey(key []byte) (vault.Pubkey, bool) {
	if len(key) != len(accountPrefix)+vault.PubkeyLength || string(key[:len(accountPrefix)]) != string(accountPrefix) {
		return vault.Pubkey{}, false
	}
	var pk vault.Pubkey
	copy(pk[:], key[len(accountPrefix):])
	return pk, true
}

// LoadAccount returns the stored account. An account that was never
// created reads as an empty account owned by the system program.
func LoadAccount(db vault.ReadOnlyKVStore, pk vault.Pubkey) (*vault.Account, error) {
	raw, err := db.Get(AccountKey(pk))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	acc := &vault.Account{Owner: vault.SystemProgramID}
	if raw == nil {
		return acc, nil
	}
	if err := acc.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "account %s", pk)
	}
	return acc, nil
}

// SaveAccount writes the account. Accounts without lamports are removed.
func SaveAccount(db vault.KVStore, pk vault.Pubkey, acc *vault.Account) error {
	if acc.Lamports == 0 {
		return db.Delete(AccountKey(pk))
	}
	raw, err := acc.Marshal()
	if err != nil {
		return errors.Wrapf(err, "account %s", pk)
	}
	return db.Set(AccountKey(pk), raw)
}

// AccountExists returns true if the account holds lamports.
func AccountExists(db vault.ReadOnlyKVStore, pk vault.Pubkey) (bool, error) {
	return db.Has(AccountKey(pk))
}

// KeyedAccount is an account together with its address.
type KeyedAccount struct {
	Pubkey vault.Pubkey
	*vault.Account
}

// ListAccounts returns all stored accounts owned by owner, in key order.
// A nil owner returns every account.
func ListAccounts(db vault.ReadOnlyKVStore, owner *vault.Pubkey) ([]KeyedAccount, error) {
	end := make([]byte, len(accountPrefix))
	copy(end, accountPrefix)
	end[len(end)-1]++

	it, err := db.Iterator(accountPrefix, end)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer it.Close()

	var res []KeyedAccount
	for it.Valid() {
		pk, ok := pubkeyFromKey(it.Key())
		if ok {
			var acc vault.Account
			if err := acc.Unmarshal(it.Value()); err != nil {
				return nil, errors.Wrapf(err, "account %s", pk)
			}
			if owner == nil || acc.Owner == *owner {
				res = append(res, KeyedAccount{Pubkey: pk, Account: &acc})
			}
		}
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
