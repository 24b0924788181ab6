package pickup

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrTimeSlotIsNotConstructed is returned when a TimeSlot was not created
// through its constructors.
var ErrTimeSlotIsNotConstructed = errors.New(
	"TimeSlot must be created via NewTimeSlot or RestoreTimeSlot constructor")

// TimeSlot is a bounded capacity unit for one operator's collection window.
// It is the one genuinely shared mutable resource in the scheduling core:
// concurrent schedulers reserve and release against the same slot, so the
// counter is only ever mutated under the slot's mutex. The invariant
// 0 <= currentPickups <= maxPickups holds at every instant, and every
// successful Reserve is paired with exactly one Release or consumed by a
// completed pickup.
type TimeSlot struct {
	id         kernel.UUID
	operatorID kernel.UUID
	start      time.Time
	end        time.Time
	maxPickups int

	mu             sync.Mutex
	currentPickups int

	isConstructed bool
}

// NewTimeSlot creates an empty slot for the given operator and window.
func NewTimeSlot(id kernel.UUID, operatorID kernel.UUID,
	start time.Time, end time.Time, maxPickups int) (*TimeSlot, error) {
	return RestoreTimeSlot(id, operatorID, start, end, maxPickups, 0)
}

// RestoreTimeSlot reconstructs a slot from persistence with its current
// reservation count.
func RestoreTimeSlot(id kernel.UUID, operatorID kernel.UUID,
	start time.Time, end time.Time, maxPickups int, currentPickups int) (*TimeSlot, error) {
	if err := errors.Join(
		validateSlotID(id, "id"),
		validateSlotID(operatorID, "operatorID"),
	); err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, errs.NewValueIsInvalidErrorWithCause("time slot window is invalid",
			fmt.Errorf("end %s is not after start %s", end, start))
	}
	if maxPickups <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxPickups is invalid",
			fmt.Errorf("%d is not greater than 0", maxPickups))
	}
	if currentPickups < 0 || currentPickups > maxPickups {
		return nil, errs.NewValueIsOutOfRangeError("currentPickups", currentPickups, 0, maxPickups)
	}

	return &TimeSlot{
		id:             id,
		operatorID:     operatorID,
		start:          start,
		end:            end,
		maxPickups:     maxPickups,
		currentPickups: currentPickups,

		isConstructed: true,
	}, nil
}

func validateSlotID(id kernel.UUID, param string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}

// Validate ensures the TimeSlot was properly constructed.
func (s *TimeSlot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrTimeSlotIsNotConstructed
	}
	return nil
}

// ID returns the slot's identifier.
func (s *TimeSlot) ID() kernel.UUID { return s.id }

// OperatorID returns the operator the slot belongs to.
func (s *TimeSlot) OperatorID() kernel.UUID { return s.operatorID }

// Start returns the window's opening time.
func (s *TimeSlot) Start() time.Time { return s.start }

// End returns the window's closing time.
func (s *TimeSlot) End() time.Time { return s.end }

// Date returns the day the window falls on, truncated in the window's
// location.
func (s *TimeSlot) Date() time.Time {
	year, month, day := s.start.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, s.start.Location())
}

// MaxPickups returns the slot's capacity bound.
func (s *TimeSlot) MaxPickups() int { return s.maxPickups }

// CurrentPickups returns the number of reservations currently held.
func (s *TimeSlot) CurrentPickups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPickups
}

// IsAvailable reports whether the slot can take one more reservation.
func (s *TimeSlot) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPickups < s.maxPickups
}

// Reserve takes one unit of capacity. The check and increment run under the
// slot's mutex so concurrent reservations can never overshoot the bound.
func (s *TimeSlot) Reserve() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveLocked()
}

// Release returns one unit of capacity. Releasing an empty slot is a
// programming error and fails loudly instead of going negative.
func (s *TimeSlot) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseLocked()
}

func (s *TimeSlot) reserveLocked() error {
	if s.currentPickups >= s.maxPickups {
		return errs.NewCapacityExhaustedError(fmt.Sprintf("time slot %s", s.id))
	}
	s.currentPickups++
	return nil
}

func (s *TimeSlot) releaseLocked() error {
	if s.currentPickups <= 0 {
		return errs.NewValueIsOutOfRangeError("currentPickups", s.currentPickups-1, 0, s.maxPickups)
	}
	s.currentPickups--
	return nil
}

// SwapReservation atomically moves one reservation from one slot to another.
// Both mutexes are taken in deterministic ID order, so concurrent swaps over
// the same pair cannot deadlock, and the pair release+reserve either succeeds
// as a whole or leaves both slots untouched. The old reservation is never
// lost to a concurrent reservation of the target slot.
func SwapReservation(from *TimeSlot, to *TimeSlot) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from.id.IsEqual(to.id) {
		return errs.NewValueIsInvalidErrorWithCause("time slots are invalid",
			errors.New("cannot swap a reservation onto the same slot"))
	}

	first, second := from, to
	if second.id.String() < first.id.String() {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if to.currentPickups >= to.maxPickups {
		return errs.NewCapacityExhaustedError(fmt.Sprintf("time slot %s", to.id))
	}
	if err := from.releaseLocked(); err != nil {
		return err
	}
	to.currentPickups++
	return nil
}
