package system

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// RegisterRoutes registers the system program under its fixed id.
func RegisterRoutes(r vault.Registry) {
	r.Register("system", ProgramID, Program{})
}

// Program processes system instructions.
type Program struct{}

var _ vault.Program = Program{}

func (Program) Process(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, accounts []*vault.AccountInfo, input []byte) error {
	if len(input) < 4 {
		return errors.Wrap(errors.ErrInvalidInstruction, "missing discriminant")
	}
	data := input[4:]
	it := vault.NewAccountIter(accounts)
	logger := vault.GetLogger(ctx)

	switch tag := binary.LittleEndian.Uint32(input); tag {
	case InstructionCreateAccount:
		logger.Debug("Instruction: CreateAccount")
		var d CreateAccountData
		if err := d.Unmarshal(data); err != nil {
			return err
		}
		return createAccount(it, d)
	case InstructionAssign:
		logger.Debug("Instruction: Assign")
		owner, err := vault.PubkeyFromBytes(prefix(data, vault.PubkeyLength))
		if err != nil {
			return errors.Wrap(errors.ErrInvalidInstruction, "assign")
		}
		return assign(it, owner)
	case InstructionTransfer:
		logger.Debug("Instruction: Transfer")
		if len(data) < 8 {
			return errors.Wrap(errors.ErrInvalidInstruction, "transfer")
		}
		return transfer(it, binary.LittleEndian.Uint64(data))
	case InstructionAllocate:
		logger.Debug("Instruction: Allocate")
		if len(data) < 8 {
			return errors.Wrap(errors.ErrInvalidInstruction, "allocate")
		}
		return allocate(it, binary.LittleEndian.Uint64(data))
	default:
		return errors.Wrapf(errors.ErrInvalidInstruction, "unknown discriminant %d", tag)
	}
}

func prefix(b []byte, n int) []byte {
	if len(b) < n {
		return b
	}
	return b[:n]
}

func createAccount(it *vault.AccountIter, d CreateAccountData) error {
	funder, err := it.Next()
	if err != nil {
		return err
	}
	account, err := it.Next()
	if err != nil {
		return err
	}
	if d.Space > MaxAccountDataSize {
		return errors.Wrapf(errors.ErrInvalidAccountData, "space %d exceeds %d", d.Space, MaxAccountDataSize)
	}
	if !funder.IsSigner {
		return errors.Wrap(errors.ErrMissingSignature, "funder")
	}
	if !account.IsSigner {
		return errors.Wrap(errors.ErrMissingSignature, "new account")
	}
	if !isUnused(account) {
		return errors.Wrapf(errors.ErrAlreadyInUse, "account %s", account.Key)
	}
	if err := move(funder, account, d.Lamports); err != nil {
		return err
	}
	account.Realloc(int(d.Space))
	account.Owner = d.Owner
	return nil
}

func assign(it *vault.AccountIter, owner vault.Pubkey) error {
	account, err := it.Next()
	if err != nil {
		return err
	}
	if !account.IsSigner {
		return errors.Wrap(errors.ErrMissingSignature, "account")
	}
	if !account.IsOwnedBy(ProgramID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "account %s is owned by %s", account.Key, account.Owner)
	}
	account.Owner = owner
	return nil
}

func transfer(it *vault.AccountIter, lamports uint64) error {
	from, err := it.Next()
	if err != nil {
		return err
	}
	to, err := it.Next()
	if err != nil {
		return err
	}
	if !from.IsSigner {
		return errors.Wrap(errors.ErrMissingSignature, "from")
	}
	if len(from.Data) != 0 || !from.IsOwnedBy(ProgramID) {
		return errors.Wrapf(errors.ErrInvalidAccountData, "%s must be a plain system account", from.Key)
	}
	return move(from, to, lamports)
}

func allocate(it *vault.AccountIter, space uint64) error {
	account, err := it.Next()
	if err != nil {
		return err
	}
	if !account.IsSigner {
		return errors.Wrap(errors.ErrMissingSignature, "account")
	}
	if !account.IsOwnedBy(ProgramID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "account %s is owned by %s", account.Key, account.Owner)
	}
	if len(account.Data) != 0 {
		return errors.Wrapf(errors.ErrAlreadyInUse, "account %s", account.Key)
	}
	if space > MaxAccountDataSize {
		return errors.Wrapf(errors.ErrInvalidAccountData, "space %d exceeds %d", space, MaxAccountDataSize)
	}
	account.Realloc(int(space))
	return nil
}

// isUnused is true for accounts nobody has written to.
func isUnused(a *vault.AccountInfo) bool {
	return a.Lamports == 0 && len(a.Data) == 0 && a.IsOwnedBy(ProgramID)
}

// move checks the balance and then debits from and credits to.
func move(from, to *vault.AccountInfo, lamports uint64) error {
	if from.Lamports < lamports {
		return errors.Wrapf(errors.ErrInsufficientFunds, "%s holds %d, needs %d", from.Key, from.Lamports, lamports)
	}
	if to.Lamports+lamports < to.Lamports {
		return errors.Wrap(errors.ErrOverflow, "lamports")
	}
	from.Lamports -= lamports
	to.Lamports += lamports
	return nil
}
