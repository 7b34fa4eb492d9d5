package kernel

// DomainEvent is a fact an aggregate records while it changes. Events are
// published only after the transaction that persisted the change commits.
type DomainEvent interface {
	// EventName is the stable dotted name, e.g. "order.confirmed".
	EventName() string
	AggregateID() UUID
}
