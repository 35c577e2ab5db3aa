/*
Package runtime executes transactions against the account store.

A transaction passes through a chain of decorators (logging, panic recovery,
signature verification and a savepoint that makes it all-or-nothing) before
the Executor runs its instructions one by one. For every instruction the
executor loads the referenced accounts, calls the program registered for the
instruction's program id and verifies what the program did to the accounts
before writing them back:

	read-only accounts must stay unchanged
	only the owning program may change data or owner, or debit lamports
	executable accounts never change
	the sum of lamports stays the same

Programs call each other through the InvokeContext they receive. A program
may sign for addresses derived from its own id (see vault.CreateProgramAddress)
and the same rules are checked for every nested call.

Runtime ties it all together behind a mutex, so transactions are processed one
at a time.
*/
package runtime
