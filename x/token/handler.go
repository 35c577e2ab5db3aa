package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// RegisterRoutes registers the token program under its fixed id.
func RegisterRoutes(r vault.Registry) {
	r.Register("token", ProgramID, Program{})
}

// Program processes token instructions.
type Program struct{}

var _ vault.Program = Program{}

func (Program) Process(ctx vault.Context, ic vault.InvokeContext, programID vault.Pubkey, accounts []*vault.AccountInfo, input []byte) error {
	p, err := UnpackPayload(input)
	if err != nil {
		return err
	}
	it := vault.NewAccountIter(accounts)
	logger := vault.GetLogger(ctx)

	switch p.Tag {
	case InstructionInitializeMint2:
		logger.Debug("Instruction: InitializeMint2")
		return initializeMint(ic, programID, it, p)
	case InstructionInitializeAccount3:
		logger.Debug("Instruction: InitializeAccount3")
		return initializeAccount(ic, programID, it, p.Owner)
	case InstructionMintTo:
		logger.Debug("Instruction: MintTo")
		return mintTo(programID, it, p.Amount)
	case InstructionTransfer:
		logger.Debug("Instruction: Transfer")
		return transfer(programID, it, p.Amount)
	case InstructionSetAuthority:
		logger.Debug("Instruction: SetAuthority")
		return setAuthority(programID, it, p.AuthorityType, p.Authority)
	case InstructionCloseAccount:
		logger.Debug("Instruction: CloseAccount")
		return closeAccount(programID, it)
	}
	return errors.Wrapf(errors.ErrInvalidInstruction, "unsupported instruction %d", p.Tag)
}

func initializeMint(ic vault.InvokeContext, programID vault.Pubkey, it *vault.AccountIter, p *Payload) error {
	info, err := it.Next()
	if err != nil {
		return err
	}
	if !info.IsOwnedBy(programID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "mint %s", info.Key)
	}
	mint, err := UnpackMint(info.Data)
	if err != nil {
		return err
	}
	if mint.IsInitialized {
		return errors.Wrapf(errors.ErrAlreadyInUse, "mint %s", info.Key)
	}
	if !ic.Rent().IsExempt(info.Lamports, len(info.Data)) {
		return errors.Wrapf(errors.ErrNotRentExempt, "mint %s", info.Key)
	}
	mint.MintAuthority = p.Authority
	mint.FreezeAuthority = p.FreezeAuthority
	mint.Decimals = p.Decimals
	mint.IsInitialized = true
	return mint.Pack(info.Data)
}

func initializeAccount(ic vault.InvokeContext, programID vault.Pubkey, it *vault.AccountIter, owner vault.Pubkey) error {
	info, err := it.Next()
	if err != nil {
		return err
	}
	mintInfo, err := it.Next()
	if err != nil {
		return err
	}
	if !info.IsOwnedBy(programID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "account %s", info.Key)
	}
	acc, err := UnpackAccount(info.Data)
	if err != nil {
		return err
	}
	if acc.IsInitialized() {
		return errors.Wrapf(errors.ErrAlreadyInUse, "account %s", info.Key)
	}
	if !ic.Rent().IsExempt(info.Lamports, len(info.Data)) {
		return errors.Wrapf(errors.ErrNotRentExempt, "account %s", info.Key)
	}
	if _, err := loadMint(programID, mintInfo); err != nil {
		return err
	}
	acc.Mint = mintInfo.Key
	acc.Owner = owner
	acc.State = AccountInitialized
	return acc.Pack(info.Data)
}

func mintTo(programID vault.Pubkey, it *vault.AccountIter, amount uint64) error {
	mintInfo, err := it.Next()
	if err != nil {
		return err
	}
	destInfo, err := it.Next()
	if err != nil {
		return err
	}
	authority, err := it.Next()
	if err != nil {
		return err
	}

	dest, err := LoadAccount(programID, destInfo)
	if err != nil {
		return err
	}
	if dest.IsFrozen() {
		return errors.Wrapf(ErrAccountFrozen, "account %s", destInfo.Key)
	}
	if dest.Mint != mintInfo.Key {
		return errors.Wrapf(ErrMintMismatch, "account %s holds %s", destInfo.Key, dest.Mint)
	}
	mint, err := loadMint(programID, mintInfo)
	if err != nil {
		return err
	}
	if mint.MintAuthority == nil {
		return errors.Wrapf(ErrFixedSupply, "mint %s", mintInfo.Key)
	}
	if err := validateOwner(*mint.MintAuthority, authority); err != nil {
		return err
	}

	if mint.Supply+amount < mint.Supply {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	if dest.Amount+amount < dest.Amount {
		return errors.Wrap(errors.ErrOverflow, "amount")
	}
	mint.Supply += amount
	dest.Amount += amount
	if err := mint.Pack(mintInfo.Data); err != nil {
		return err
	}
	return dest.Pack(destInfo.Data)
}

func transfer(programID vault.Pubkey, it *vault.AccountIter, amount uint64) error {
	sourceInfo, err := it.Next()
	if err != nil {
		return err
	}
	destInfo, err := it.Next()
	if err != nil {
		return err
	}
	authority, err := it.Next()
	if err != nil {
		return err
	}

	source, err := LoadAccount(programID, sourceInfo)
	if err != nil {
		return err
	}
	dest, err := LoadAccount(programID, destInfo)
	if err != nil {
		return err
	}
	if source.IsFrozen() || dest.IsFrozen() {
		return ErrAccountFrozen
	}
	if source.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientFunds, "%s holds %d, needs %d", sourceInfo.Key, source.Amount, amount)
	}
	if source.Mint != dest.Mint {
		return errors.Wrapf(ErrMintMismatch, "%s and %s", sourceInfo.Key, destInfo.Key)
	}
	if err := validateOwner(source.Owner, authority); err != nil {
		return err
	}
	if sourceInfo.Key == destInfo.Key {
		return nil
	}

	if dest.Amount+amount < dest.Amount {
		return errors.Wrap(errors.ErrOverflow, "amount")
	}
	source.Amount -= amount
	dest.Amount += amount
	if err := source.Pack(sourceInfo.Data); err != nil {
		return err
	}
	return dest.Pack(destInfo.Data)
}

func setAuthority(programID vault.Pubkey, it *vault.AccountIter, kind AuthorityType, newAuthority *vault.Pubkey) error {
	target, err := it.Next()
	if err != nil {
		return err
	}
	authority, err := it.Next()
	if err != nil {
		return err
	}
	if !target.IsOwnedBy(programID) {
		return errors.Wrapf(errors.ErrIncorrectProgramID, "account %s", target.Key)
	}

	switch len(target.Data) {
	case AccountLen:
		acc, err := LoadAccount(programID, target)
		if err != nil {
			return err
		}
		if acc.IsFrozen() {
			return errors.Wrapf(ErrAccountFrozen, "account %s", target.Key)
		}
		switch kind {
		case AuthorityAccountOwner:
			if err := validateOwner(acc.Owner, authority); err != nil {
				return err
			}
			if newAuthority == nil {
				return errors.Wrap(errors.ErrInvalidInstruction, "account owner cannot be removed")
			}
			acc.Owner = *newAuthority
			acc.Delegate = nil
			acc.DelegatedAmount = 0
		case AuthorityCloseAccount:
			current := acc.Owner
			if acc.CloseAuthority != nil {
				current = *acc.CloseAuthority
			}
			if err := validateOwner(current, authority); err != nil {
				return err
			}
			acc.CloseAuthority = newAuthority
		default:
			return errors.Wrapf(ErrAuthorityTypeNotSupported, "%s on a token account", kind)
		}
		return acc.Pack(target.Data)

	case MintLen:
		mint, err := loadMint(programID, target)
		if err != nil {
			return err
		}
		switch kind {
		case AuthorityMintTokens:
			if mint.MintAuthority == nil {
				return errors.Wrapf(ErrFixedSupply, "mint %s", target.Key)
			}
			if err := validateOwner(*mint.MintAuthority, authority); err != nil {
				return err
			}
			mint.MintAuthority = newAuthority
		case AuthorityFreezeAccount:
			if mint.FreezeAuthority == nil {
				return errors.Wrapf(ErrMintCannotFreeze, "mint %s", target.Key)
			}
			if err := validateOwner(*mint.FreezeAuthority, authority); err != nil {
				return err
			}
			mint.FreezeAuthority = newAuthority
		default:
			return errors.Wrapf(ErrAuthorityTypeNotSupported, "%s on a mint", kind)
		}
		return mint.Pack(target.Data)
	}
	return errors.Wrapf(errors.ErrInvalidAccountData, "account %s is neither a mint nor a token account", target.Key)
}

func closeAccount(programID vault.Pubkey, it *vault.AccountIter) error {
	info, err := it.Next()
	if err != nil {
		return err
	}
	destInfo, err := it.Next()
	if err != nil {
		return err
	}
	authority, err := it.Next()
	if err != nil {
		return err
	}

	acc, err := LoadAccount(programID, info)
	if err != nil {
		return err
	}
	if info.Key == destInfo.Key {
		return errors.Wrap(errors.ErrInvalidAccountData, "cannot close into itself")
	}
	if acc.IsNative == nil && acc.Amount != 0 {
		return errors.Wrapf(ErrNonNativeHasBalance, "account %s holds %d", info.Key, acc.Amount)
	}
	current := acc.Owner
	if acc.CloseAuthority != nil {
		current = *acc.CloseAuthority
	}
	if err := validateOwner(current, authority); err != nil {
		return err
	}

	if destInfo.Lamports+info.Lamports < destInfo.Lamports {
		return errors.Wrap(errors.ErrOverflow, "lamports")
	}
	destInfo.Lamports += info.Lamports
	info.Lamports = 0
	for i := range info.Data {
		info.Data[i] = 0
	}
	return nil
}

// LoadAccount returns the initialized token account held by info.
func LoadAccount(programID vault.Pubkey, info *vault.AccountInfo) (*Account, error) {
	if !info.IsOwnedBy(programID) {
		return nil, errors.Wrapf(errors.ErrIncorrectProgramID, "account %s is owned by %s", info.Key, info.Owner)
	}
	acc, err := UnpackAccount(info.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "account %s", info.Key)
	}
	if !acc.IsInitialized() {
		return nil, errors.Wrapf(errors.ErrUninitializedAccount, "account %s", info.Key)
	}
	return acc, nil
}

func loadMint(programID vault.Pubkey, info *vault.AccountInfo) (*Mint, error) {
	if !info.IsOwnedBy(programID) {
		return nil, errors.Wrapf(ErrInvalidMint, "%s is owned by %s", info.Key, info.Owner)
	}
	mint, err := UnpackMint(info.Data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMint, "%s: %s", info.Key, err)
	}
	if !mint.IsInitialized {
		return nil, errors.Wrapf(ErrInvalidMint, "%s is not initialized", info.Key)
	}
	return mint, nil
}

// validateOwner checks that authority is expected and signed.
func validateOwner(expected vault.Pubkey, authority *vault.AccountInfo) error {
	if authority.Key != expected {
		return errors.Wrapf(ErrOwnerMismatch, "want %s, got %s", expected, authority.Key)
	}
	if !authority.IsSigner {
		return errors.Wrapf(errors.ErrMissingSignature, "authority %s", authority.Key)
	}
	return nil
}
