// Package shipment contains the Guide aggregate and its satellites: the
// shipment lifecycle status machine, the tracking timeline, scannable guide
// codes and the bounded delivery retry cycle.
//
// A Guide is generated from a confirmed order and moves through
// Generated -> PickedUp -> InTransit -> OutForDelivery -> Delivered, with
// Returned and Cancelled as the alternative terminal states. Every transition
// appends a tracking entry; repeated transit reports are allowed and append
// tracking entries without re-recording the in-transit event.
package shipment
