package offer

import (
	"errors"
	"fmt"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

// Listing is the descriptive part of an offer. The order workflow never changes it.
type Listing struct {
	Brand      string
	Model      string
	Year       int
	Km         int
	Price      kernel.Money
	Location   string
	OwnerName  string
	OwnerPhone string
	Images     []string
}

func (l Listing) Validate() error {
	var errList []error
	if strings.TrimSpace(l.Brand) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("brand"))
	}
	if strings.TrimSpace(l.Model) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("model"))
	}
	if l.Year < MinYear || l.Year > MaxYear {
		errList = append(errList, errs.NewValueIsOutOfRangeError("year", l.Year, MinYear, MaxYear))
	}
	if l.Km < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("km", fmt.Errorf("%d is negative", l.Km)))
	}
	for i, img := range l.Images {
		if strings.TrimSpace(img) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("images[%d]", i)))
		}
	}
	return errors.Join(errList...)
}

func (l Listing) clone() Listing {
	c := l
	c.Images = append([]string(nil), l.Images...)
	return c
}
