/*
Package token implements a token program compatible with the SPL token
account layouts.

A mint describes a token and who may create more of it. A token account
holds a balance of one mint on behalf of its owner. Both live in accounts
owned by this program; their data is the fixed little endian layout the
SPL token program uses, so existing tooling can decode them.

Only the instructions needed to create tokens, move them and hand over
control of an account are supported: InitializeMint2, InitializeAccount3,
MintTo, Transfer, SetAuthority and CloseAccount.
*/
package token
