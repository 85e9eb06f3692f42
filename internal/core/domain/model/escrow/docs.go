// Package escrow contains the ledger side of the fulfillment engine.
//
// Each participant owns one Account tracking the funds the engine currently
// attributes to them. A synthetic holding account receives the client's
// payment and is drained into the provider and courier accounts when the
// order closes. Because every movement is a matched credit/debit pair, the
// sum of all balances never changes.
package escrow
