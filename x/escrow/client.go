package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x/system"
)

// NewEscrowInstructions returns the instructions that create a rent exempt
// escrow record owned by programID and initialize it. Both run in the same
// transaction, so nobody else can initialize the record first. payer,
// initializer and escrow must sign.
func NewEscrowInstructions(programID, payer, initializer, deposit, receiving, escrow vault.Pubkey, amount uint64, rent vault.Rent) []vault.Instruction {
	return []vault.Instruction{
		system.CreateAccount(payer, escrow, rent.MinimumBalance(EscrowLen), EscrowLen, programID),
		InitEscrow(programID, initializer, deposit, receiving, escrow, amount),
	}
}

// DecodeEscrow decodes the initialized record stored in acc.
func DecodeEscrow(programID, pk vault.Pubkey, acc *vault.Account) (*Escrow, error) {
	return loadEscrow(programID, vault.NewAccountInfo(pk, false, false, acc))
}
