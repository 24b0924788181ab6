package pickup

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Priority orders pickups within a route. Lower rank collects first:
// Urgent < High < Normal < Low.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityUrgent pickups are collected before everything else.
	PriorityUrgent

	// PriorityHigh pickups are collected before normal traffic.
	PriorityHigh

	// PriorityNormal is the default priority.
	PriorityNormal

	// PriorityLow pickups are collected last.
	PriorityLow
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityUrgent:  "Urgent",
		PriorityHigh:    "High",
		PriorityNormal:  "Normal",
		PriorityLow:     "Low",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityUrgent || p > PriorityLow {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Rank returns the collection order key; lower values collect first.
func (p Priority) Rank() int {
	return int(p)
}
