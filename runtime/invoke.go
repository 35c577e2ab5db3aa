package runtime

import (
	"bytes"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// frame tracks the accounts a single program invocation can see, so that
// changes can be checked against the rules once the program returns.
type frame struct {
	programID vault.Pubkey
	keys      []vault.Pubkey
	accounts  map[vault.Pubkey]*vault.Account
	signer    map[vault.Pubkey]bool
	writable  map[vault.Pubkey]bool
	infos     []*vault.AccountInfo
	pre       map[vault.Pubkey]*vault.Account
}

func newFrame(programID vault.Pubkey, infos []*vault.AccountInfo) *frame {
	f := &frame{
		programID: programID,
		accounts:  make(map[vault.Pubkey]*vault.Account, len(infos)),
		signer:    make(map[vault.Pubkey]bool),
		writable:  make(map[vault.Pubkey]bool),
		infos:     infos,
	}
	for _, info := range infos {
		if _, ok := f.accounts[info.Key]; !ok {
			f.keys = append(f.keys, info.Key)
			f.accounts[info.Key] = info.Account
		}
		if info.IsSigner {
			f.signer[info.Key] = true
		}
		if info.IsWritable {
			f.writable[info.Key] = true
		}
	}
	f.checkpoint()
	return f
}

// checkpoint accepts the current state of all accounts as the new base line.
func (f *frame) checkpoint() {
	f.pre = make(map[vault.Pubkey]*vault.Account, len(f.keys))
	for _, k := range f.keys {
		f.pre[k] = f.accounts[k].Clone()
	}
}

// verify checks every change made since the last checkpoint.
//
// Only writable accounts change. Executable accounts never change. Only
// the owner may debit lamports, change data or hand the account over, and
// a new owner only receives zeroed data. Lamports are neither created nor
// destroyed.
func (f *frame) verify() error {
	for _, info := range f.infos {
		if info.Account != f.accounts[info.Key] {
			return errors.Wrapf(errors.ErrHuman, "account %s replaced", info.Key)
		}
	}

	var before, after uint64
	for _, k := range f.keys {
		pre, post := f.pre[k], f.accounts[k]
		var err error
		if before, err = addLamports(before, pre.Lamports); err != nil {
			return err
		}
		if after, err = addLamports(after, post.Lamports); err != nil {
			return err
		}
		if pre.Equal(post) {
			continue
		}

		switch {
		case !f.writable[k]:
			return errors.Wrapf(errors.ErrAccountModified, "read-only account %s", k)
		case pre.Executable || post.Executable:
			return errors.Wrapf(errors.ErrAccountModified, "executable account %s", k)
		}
		if pre.Owner == f.programID {
			if pre.Owner != post.Owner && !isZeroed(post.Data) {
				return errors.Wrapf(errors.ErrAccountModified, "account %s assigned with data", k)
			}
			continue
		}
		switch {
		case pre.Owner != post.Owner:
			return errors.Wrapf(errors.ErrAccountModified, "owner of %s changed by %s", k, f.programID)
		case post.Lamports < pre.Lamports:
			return errors.Wrapf(errors.ErrAccountModified, "%s debited by %s", k, f.programID)
		case !bytes.Equal(pre.Data, post.Data):
			return errors.Wrapf(errors.ErrAccountModified, "data of %s changed by %s", k, f.programID)
		}
	}
	if before != after {
		return errors.Wrapf(errors.ErrUnbalancedInstruction, "%d before, %d after", before, after)
	}
	return nil
}

func addLamports(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, errors.Wrap(errors.ErrOverflow, "lamports")
	}
	return sum, nil
}

func isZeroed(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// invokeContext is handed to a program so it can call other programs.
type invokeContext struct {
	inv   *invocation
	frame *frame
	depth int
}

var _ vault.InvokeContext = (*invokeContext)(nil)

func (ic *invokeContext) Rent() vault.Rent {
	return ic.inv.conf.Rent
}

func (ic *invokeContext) Invoke(ctx vault.Context, ix vault.Instruction, accounts []*vault.AccountInfo) error {
	return ic.InvokeSigned(ctx, ix, accounts)
}

func (ic *invokeContext) InvokeSigned(ctx vault.Context, ix vault.Instruction, accounts []*vault.AccountInfo, signerSeeds ...[][]byte) error {
	derived := make(map[vault.Pubkey]bool, len(signerSeeds))
	for _, seeds := range signerSeeds {
		pk, err := vault.CreateProgramAddress(seeds, ic.frame.programID)
		if err != nil {
			return errors.Wrap(err, "signer seeds")
		}
		derived[pk] = true
	}

	passed := make(map[vault.Pubkey]*vault.AccountInfo, len(accounts))
	for _, info := range accounts {
		passed[info.Key] = info
	}

	signer, writable := mergePrivileges(ix.Accounts)
	for _, m := range ix.Accounts {
		info, ok := passed[m.Pubkey]
		if !ok {
			return errors.Wrapf(errors.ErrNotEnoughAccountKeys, "account %s not passed", m.Pubkey)
		}
		if acc, ok := ic.frame.accounts[m.Pubkey]; !ok || acc != info.Account {
			return errors.Wrapf(errors.ErrNotEnoughAccountKeys, "account %s unknown to caller", m.Pubkey)
		}
		if m.IsSigner && !ic.frame.signer[m.Pubkey] && !derived[m.Pubkey] {
			return errors.Wrapf(errors.ErrPrivilegeEscalation, "%s cannot sign", m.Pubkey)
		}
		if m.IsWritable && !ic.frame.writable[m.Pubkey] {
			return errors.Wrapf(errors.ErrPrivilegeEscalation, "%s is read-only", m.Pubkey)
		}
	}

	infos := make([]*vault.AccountInfo, len(ix.Accounts))
	for i, m := range ix.Accounts {
		infos[i] = vault.NewAccountInfo(m.Pubkey, signer[m.Pubkey], writable[m.Pubkey], passed[m.Pubkey].Account)
	}

	// Changes the caller made so far must be valid on their own, the
	// callee's changes are checked by the callee's frame.
	if err := ic.frame.verify(); err != nil {
		return err
	}
	err := ic.inv.run(ctx, ix.ProgramID, infos, ix.Data, ic.depth+1)
	ic.frame.checkpoint()
	return err
}
