package visitor

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

const (
	HighestPriority = 1
	LowestPriority  = 5
)

// Interest links a visitor to an offer. Priority 1 is the strongest interest.
type Interest struct {
	offerID  kernel.UUID
	priority int
}

func NewInterest(offerID kernel.UUID, priority int) (Interest, error) {
	if err := offerID.Validate(); err != nil {
		return Interest{}, err
	}
	if priority < HighestPriority || priority > LowestPriority {
		return Interest{}, errs.NewValueIsOutOfRangeError("priority", priority, HighestPriority, LowestPriority)
	}
	return Interest{offerID: offerID, priority: priority}, nil
}

func (i Interest) OfferID() kernel.UUID { return i.offerID }
func (i Interest) Priority() int        { return i.priority }

func validateInterests(interests []Interest) error {
	seen := make(map[kernel.UUID]struct{}, len(interests))
	var errList []error
	for _, in := range interests {
		if err := in.offerID.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, ok := seen[in.offerID]; ok {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"interests", errors.New("offer "+in.offerID.String()+" is listed twice")))
		}
		seen[in.offerID] = struct{}{}
	}
	return errors.Join(errList...)
}
