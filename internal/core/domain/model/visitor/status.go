package visitor

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

type Status string

const (
	New        Status = "new"
	Contacted  Status = "contacted"
	Interested Status = "interested"
	Converted  Status = "converted"
	Lost       Status = "lost"
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
	case New, Contacted, Interested, Converted, Lost:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid visitor status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
