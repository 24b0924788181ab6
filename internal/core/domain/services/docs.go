// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PickupScheduler: A domain service coordinating pickup requests and the
//     time slot capacity they reserve against
//   - RoutePlanner: A domain service building and optimizing an operator's
//     daily collection route
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
