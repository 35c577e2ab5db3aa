package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/token"
)

// BuiltinName is the name the escrow program is deployed by.
const BuiltinName = "escrow"

// RegisterRoutes makes the escrow program available for deployment. It
// has no fixed id and runs under every id it is deployed to.
func RegisterRoutes(r vault.BuiltinRegistry) {
	r.RegisterBuiltin(BuiltinName, Program{})
}

// Program processes escrow instructions.
type Program struct{}

var _ vault.Program = Program{}

func (Program) Process(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, accounts []*vault.AccountInfo, input []byte) error {
	p, err := UnpackPayload(input)
	if err != nil {
		return err
	}
	it := vault.NewAccountIter(accounts)

	switch p.Tag {
	case InstructionInitEscrow:
		vault.GetLogger(ctx).Debug("Instruction: InitEscrow", "amount", p.Amount)
		return initEscrow(ctx, ic, programID, it, p.Amount)
	case InstructionExchange:
		vault.GetLogger(ctx).Debug("Instruction: Exchange", "amount", p.Amount)
		return exchange(ctx, ic, programID, it, p.Amount)
	}
	return errors.Wrapf(errors.ErrInvalidInstruction, "unsupported instruction %d", p.Tag)
}

type initInfos struct {
	initializer, deposit, receiving, escrow, tokenProgram *vault.AccountInfo
}

func nextAccounts(it *vault.AccountIter, dst ...**vault.AccountInfo) error {
	for _, d := range dst {
		info, err := it.Next()
		if err != nil {
			return err
		}
		*d = info
	}
	return nil
}

func initEscrow(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, it *vault.AccountIter, amount uint64) error {
	var a initInfos
	if err := nextAccounts(it, &a.initializer, &a.deposit, &a.receiving, &a.escrow, &a.tokenProgram); err != nil {
		return err
	}

	if !a.initializer.IsSigner {
		return errors.Wrapf(errors.ErrMissingSignature, "initializer %s", a.initializer.Key)
	}
	if !a.escrow.IsOwnedBy(programID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "escrow %s is owned by %s", a.escrow.Key, a.escrow.Owner)
	}
	if !ic.Rent().IsExempt(a.escrow.Lamports, len(a.escrow.Data)) {
		return errors.Wrapf(errors.ErrNotRentExempt, "escrow %s", a.escrow.Key)
	}
	state, err := UnpackEscrow(a.escrow.Data)
	if err != nil {
		return errors.Wrapf(err, "escrow %s", a.escrow.Key)
	}
	if state.IsInitialized {
		return errors.Wrapf(errors.ErrAlreadyInUse, "escrow %s", a.escrow.Key)
	}
	if a.tokenProgram.Key != token.ProgramID {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "token program %s", a.tokenProgram.Key)
	}
	deposit, err := token.LoadAccount(token.ProgramID, a.deposit)
	if err != nil {
		return errors.Wrap(err, "deposit")
	}
	if _, err := token.LoadAccount(token.ProgramID, a.receiving); err != nil {
		return errors.Wrap(err, "receiving")
	}
	if deposit.Owner != a.initializer.Key {
		return errors.Wrapf(token.ErrOwnerMismatch, "deposit %s is held by %s", a.deposit.Key, deposit.Owner)
	}

	authority, err := FindAuthority(programID)
	if err != nil {
		return err
	}

	state = &Escrow{
		IsInitialized:    true,
		Initializer:      a.initializer.Key,
		DepositAccount:   a.deposit.Key,
		ReceivingAccount: a.receiving.Key,
		ExpectedAmount:   amount,
	}
	if err := state.Pack(a.escrow.Data); err != nil {
		return err
	}

	vault.GetLogger(ctx).Debug("Calling the token program to transfer token account ownership", "authority", authority.Address)
	ix := token.SetAuthority(a.deposit.Key, a.initializer.Key, token.AuthorityAccountOwner, &authority.Address)
	return errors.Wrap(ic.Invoke(ctx, ix, []*vault.AccountInfo{a.deposit, a.initializer, a.tokenProgram}), "set deposit authority")
}

type exchangeInfos struct {
	taker, takerSending, takerReceiving, deposit *vault.AccountInfo
	initializer, initializerReceiving, escrow    *vault.AccountInfo
	tokenProgram, authority                      *vault.AccountInfo
}

func exchange(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, it *vault.AccountIter, amount uint64) error {
	var a exchangeInfos
	err := nextAccounts(it,
		&a.taker, &a.takerSending, &a.takerReceiving, &a.deposit,
		&a.initializer, &a.initializerReceiving, &a.escrow,
		&a.tokenProgram, &a.authority)
	if err != nil {
		return err
	}

	if !a.taker.IsSigner {
		return errors.Wrapf(errors.ErrMissingSignature, "taker %s", a.taker.Key)
	}
	state, err := loadEscrow(programID, a.escrow)
	if err != nil {
		return err
	}
	if a.deposit.Key != state.DepositAccount {
		return errors.Wrapf(errors.ErrInvalidAccountData, "deposit is %s, escrow holds %s", a.deposit.Key, state.DepositAccount)
	}
	if a.initializer.Key != state.Initializer {
		return errors.Wrapf(errors.ErrInvalidAccountData, "initializer is %s, escrow holds %s", a.initializer.Key, state.Initializer)
	}
	if a.initializerReceiving.Key != state.ReceivingAccount {
		return errors.Wrapf(errors.ErrInvalidAccountData, "receiving is %s, escrow holds %s", a.initializerReceiving.Key, state.ReceivingAccount)
	}
	if amount != state.ExpectedAmount {
		return errors.Wrapf(ErrExpectedAmountMismatch, "taker offers %d, escrow expects %d", amount, state.ExpectedAmount)
	}
	if a.tokenProgram.Key != token.ProgramID {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "token program %s", a.tokenProgram.Key)
	}

	authority, err := FindAuthority(programID)
	if err != nil {
		return err
	}
	if a.authority.Key != authority.Address {
		return errors.Wrapf(errors.ErrInvalidAccountData, "authority is %s, want %s", a.authority.Key, authority.Address)
	}
	deposit, err := token.LoadAccount(token.ProgramID, a.deposit)
	if err != nil {
		return errors.Wrap(err, "deposit")
	}
	if deposit.Owner != authority.Address {
		return errors.Wrapf(errors.ErrInvalidAccountData, "deposit %s is held by %s", a.deposit.Key, deposit.Owner)
	}

	logger := vault.GetLogger(ctx)

	logger.Debug("Calling the token program to transfer tokens to the initializer", "amount", amount)
	pay := token.Transfer(a.takerSending.Key, a.initializerReceiving.Key, a.taker.Key, amount)
	if err := ic.Invoke(ctx, pay, []*vault.AccountInfo{a.takerSending, a.initializerReceiving, a.taker, a.tokenProgram}); err != nil {
		return errors.Wrap(err, "pay initializer")
	}

	logger.Debug("Calling the token program to transfer tokens to the taker", "amount", deposit.Amount)
	release := token.Transfer(a.deposit.Key, a.takerReceiving.Key, authority.Address, deposit.Amount)
	if err := ic.InvokeSigned(ctx, release, []*vault.AccountInfo{a.deposit, a.takerReceiving, a.authority, a.tokenProgram}, authority.Seeds()); err != nil {
		return errors.Wrap(err, "release deposit")
	}

	logger.Debug("Calling the token program to close the deposit account")
	closeDeposit := token.CloseAccount(a.deposit.Key, a.initializer.Key, authority.Address)
	if err := ic.InvokeSigned(ctx, closeDeposit, []*vault.AccountInfo{a.deposit, a.initializer, a.authority, a.tokenProgram}, authority.Seeds()); err != nil {
		return errors.Wrap(err, "close deposit")
	}

	return closeEscrow(a.escrow, a.initializer)
}

// loadEscrow returns the initialized record held by info. A record that
// was consumed by an exchange no longer exists and reads as uninitialized.
func loadEscrow(programID vault.Pubkey, info *vault.AccountInfo) (*Escrow, error) {
	if len(info.Data) == 0 {
		return nil, errors.Wrapf(errors.ErrUninitializedAccount, "escrow %s", info.Key)
	}
	state, err := UnpackEscrow(info.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "escrow %s", info.Key)
	}
	if !state.IsInitialized {
		return nil, errors.Wrapf(errors.ErrUninitializedAccount, "escrow %s", info.Key)
	}
	if !info.IsOwnedBy(programID) {
		return nil, errors.Wrapf(errors.ErrIncorrectProgramID, "escrow %s is owned by %s", info.Key, info.Owner)
	}
	return state, nil
}

// closeEscrow hands the record lamports to dest and wipes its data. The
// runtime removes the emptied account.
func closeEscrow(escrow, dest *vault.AccountInfo) error {
	if dest.Lamports+escrow.Lamports < dest.Lamports {
		return errors.Wrap(errors.ErrOverflow, "lamports")
	}
	dest.Lamports += escrow.Lamports
	escrow.Lamports = 0
	for i := range escrow.Data {
		escrow.Data[i] = 0
	}
	return nil
}
