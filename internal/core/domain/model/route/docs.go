// Package route contains the Route aggregate: one operator's ordered pickup
// stops for one day, with priority-and-distance optimization and the
// all-pickups-terminal completion invariant.
package route
