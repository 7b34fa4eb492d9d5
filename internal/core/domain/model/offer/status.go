package offer

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

type Status string

const (
	Available Status = "available"
	Reserved  Status = "reserved"
	Sold      Status = "sold"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Available, Reserved, Sold:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid offer status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
