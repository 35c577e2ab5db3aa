/*
Package escrow implements a two party token escrow.

The initializer locks tokens of one mint in a deposit token account and
names how many tokens of another mint it wants in return. Control over the
deposit account moves to the program authority, an address derived from
the program id that no private key exists for. Only this program can sign
for it, so the locked tokens can leave the deposit account in one way only:
a taker sends the expected amount to the initializer and, within the same
instruction, receives the whole deposit.

	InitEscrow(amount)
	  0. [signer]   initializer
	  1. [writable] deposit token account, held by the initializer
	  2. []         token account the initializer receives payment on
	  3. [writable] escrow record, owned by this program and rent exempt
	  4. []         token program

	Exchange(amount)
	  0. [signer]   taker
	  1. [writable] taker's token account paying the initializer
	  2. [writable] taker's token account receiving the deposit
	  3. [writable] deposit token account
	  4. [writable] initializer, receives the rent of the closed accounts
	  5. [writable] token account the initializer receives payment on
	  6. [writable] escrow record
	  7. []         token program
	  8. []         program authority

There is no way to cancel an escrow. Tokens locked by InitEscrow stay in
the deposit account until somebody takes the trade. An escrow record is
used for a single trade and its terms cannot be changed.
*/
package escrow
