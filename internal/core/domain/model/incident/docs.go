// Package incident contains the Incident aggregate: problems reported
// against a shipment and their review, escalation and resolution lifecycle.
package incident
