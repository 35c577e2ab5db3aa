package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x/system"
)

// NewMintInstructions returns the instructions that create a rent exempt
// mint account owned by this program and initialize it. Both payer and
// mint must sign.
func NewMintInstructions(payer, mint, authority vault.Pubkey, decimals uint8, rent vault.Rent) []vault.Instruction {
	return []vault.Instruction{
		system.CreateAccount(payer, mint, rent.MinimumBalance(MintLen), MintLen, ProgramID),
		InitializeMint2(mint, decimals, authority, nil),
	}
}

// NewAccountInstructions returns the instructions that create a rent
// exempt token account of mint held by owner. Both payer and account must
// sign.
func NewAccountInstructions(payer, account, mint, owner vault.Pubkey, rent vault.Rent) []vault.Instruction {
	return []vault.Instruction{
		system.CreateAccount(payer, account, rent.MinimumBalance(AccountLen), AccountLen, ProgramID),
		InitializeAccount3(account, mint, owner),
	}
}

// DecodeAccount decodes the token account stored in acc. It fails if acc is
// not an initialized token account.
func DecodeAccount(pk vault.Pubkey, acc *vault.Account) (*Account, error) {
	return LoadAccount(ProgramID, vault.NewAccountInfo(pk, false, false, acc))
}

// DecodeMint decodes the mint stored in acc.
func DecodeMint(pk vault.Pubkey, acc *vault.Account) (*Mint, error) {
	return loadMint(ProgramID, vault.NewAccountInfo(pk, false, false, acc))
}
