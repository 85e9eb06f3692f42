// Package order provides domain entities and business logic for purchase
// orders in the fulfillment engine. It implements the Order aggregate root
// with lifecycle management, fee custody bookkeeping and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, fees, held funds and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - DomainEvent: Facts recorded by mutations, published after commit via the outbox
//
// Key business rules:
//   - Orders progress Registered -> Priced -> Processing -> AwaitingPayment ->
//     Paid -> Invoiced -> Closed, with Cancelled reachable from Registered and Priced only
//   - Fees are set once and are immutable after leaving Registered
//   - Payment must equal the exact fee sum; paid is recorded exactly once
//   - Closed and Cancelled are terminal and are never left
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
