package order

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Completed Status = "completed"
	Canceled  Status = "canceled"
)

// Event names a lifecycle transition.
type Event string

const (
	Confirm  Event = "confirm"
	Complete Event = "complete"
	Cancel   Event = "cancel"
)

var transitions = map[Status]map[Event]Status{
	Pending: {
		Confirm: Confirmed,
		Cancel:  Canceled,
	},
	Confirmed: {
		Complete: Completed,
		Cancel:   Canceled,
	},
	Completed: {},
	Canceled:  {},
}

// rejections are reported when an event is applied in a state that disallows it.
var rejections = map[Event]map[Status]string{
	Confirm: {
		"": "only pending orders can be confirmed",
	},
	Complete: {
		"": "only confirmed orders can be completed",
	},
	Cancel: {
		Completed: "cannot cancel a completed order",
		Canceled:  "order is already canceled",
	},
}

// CanTransition reports whether event moves an order from one status to the other.
func CanTransition(from, to Status, event Event) bool {
	next, ok := transitions[from][event]
	return ok && next == to
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition or edit is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// IsActive reports whether the order holds its offer.
func (s Status) IsActive() bool {
	return s == Pending || s == Confirmed
}

// Apply returns the status reached by event, or a PreconditionFailedError.
func (s Status) Apply(event Event) (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if next, ok := transitions[s][event]; ok {
		return next, nil
	}

	reason, ok := rejections[event][s]
	if !ok {
		reason, ok = rejections[event][""]
	}
	if !ok {
		reason = fmt.Sprintf("cannot %s a %s order", event, s)
	}
	return "", errs.NewPreconditionFailedError("order", reason)
}

// ValidateUpdate allows field edits only while the order is active.
func (s Status) ValidateUpdate() error {
	if !s.IsActive() {
		return errs.NewPreconditionFailedError("order", "completed and canceled orders cannot be modified")
	}
	return nil
}

// ValidateRemove allows withdrawing pending and canceled orders only.
func (s Status) ValidateRemove() error {
	switch s {
	case Pending, Canceled:
		return nil
	default:
		return errs.NewConflictError("order", fmt.Sprintf("a %s order cannot be deleted", s))
	}
}
