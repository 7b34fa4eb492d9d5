package order

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Type tells stock sales from imported cars.
type Type string

const (
	Inside  Type = "inside"
	Outside Type = "outside"
)

func (t Type) Validate() error {
	switch t {
	case Inside, Outside:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}

// ProcessStatus is the logistics sub-state of an outside order. Inside orders keep it empty.
type ProcessStatus string

const (
	NoProcess ProcessStatus = ""
	Ordered   ProcessStatus = "ordered"
	Purchased ProcessStatus = "purchased"
	Shipping  ProcessStatus = "shipping"
	Customs   ProcessStatus = "customs"
	Arrived   ProcessStatus = "arrived"
	Delivered ProcessStatus = "delivered"
)

func ParseProcessStatus(s string) (ProcessStatus, error) {
	ps := ProcessStatus(s)
	if ps == NoProcess {
		return "", errs.NewValueIsRequiredError("processStatus")
	}
	if err := ps.Validate(); err != nil {
		return "", err
	}
	return ps, nil
}

func (p ProcessStatus) Validate() error {
	switch p {
	case NoProcess, Ordered, Purchased, Shipping, Customs, Arrived, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("processStatus",
			fmt.Errorf("%q is not a valid process status", string(p)))
	}
}

func (p ProcessStatus) String() string {
	return string(p)
}
