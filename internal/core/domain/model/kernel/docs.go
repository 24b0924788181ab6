// Package kernel provides core domain primitives and utilities for the shipping system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object representing geographic coordinates with distance calculation
//   - Money: A value object for monetary amounts backed by arbitrary-precision decimals
//   - DomainEvent and EventRecorder: The per-aggregate outbox for committed state transitions
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
