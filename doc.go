/*
Package vault defines the interfaces and value types shared by the account
runtime and the programs that run on top of it: public keys and program
derived addresses, accounts, instructions and transactions, the storage
abstraction and the context helpers.

Programs (the system program, the token program and the escrow program live
under x/) implement the Program interface. They never touch the store
directly. The runtime hands them the accounts referenced by an instruction and
an InvokeContext to call other programs with.

We pass context through context.Context between the runtime, its decorators
and the programs. There should exist two functions for every XYZ of type T
that we want to support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)
*/
package vault
