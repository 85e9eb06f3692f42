// Package services provides domain services that implement business rules
// spanning more than one aggregate of the fulfillment engine.
//
// The package includes:
//   - AccessPolicy: role checks for the three fixed participants
//     (provider, client, courier) that every order operation must pass
//
// Domain services hold no persistent state of their own; they are configured
// once at startup and consulted by the application layer before aggregates
// are touched.
package services
