// Package order implements the Order aggregate: the lifecycle of a shipping
// request from creation through quoting and confirmation to guide generation.
//
// The package enforces the order state machine
// (Pending -> Quoted -> Confirmed -> WithGuide, with Cancelled reachable from
// every non-terminal state) through the Status value object, and records one
// domain event per committed transition on the aggregate's event outbox.
package order
