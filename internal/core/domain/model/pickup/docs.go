// Package pickup contains the PickupRequest aggregate and the TimeSlot
// capacity unit.
//
// PickupRequest tracks one package collection from scheduling through a
// bounded number of attempts to a terminal state. TimeSlot is the shared
// mutable resource of the scheduling core: its reservation counter is only
// mutated under the slot's mutex, and every successful reservation is paired
// with exactly one release or consumed by a completed pickup. Moving a
// reservation between two slots goes through SwapReservation, which locks
// both slots so the pair either swaps as a whole or not at all.
package pickup
