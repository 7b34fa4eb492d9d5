package order

import (
	"errors"
	"strings"

	"dealership/internal/pkg/errs"
)

// CustomCar describes a vehicle ordered from outside the dealership stock.
type CustomCar struct {
	brand string
	model string
	year  int
	color string
	vin   string
}

func NewCustomCar(brand, model string, year int, color, vin string) (CustomCar, error) {
	var errList []error
	if strings.TrimSpace(brand) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customCar.brand"))
	}
	if strings.TrimSpace(model) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customCar.model"))
	}
	if year != 0 && (year < 1900 || year > 2100) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("customCar.year", year, 1900, 2100))
	}
	if err := errors.Join(errList...); err != nil {
		return CustomCar{}, err
	}

	return CustomCar{brand: brand, model: model, year: year, color: color, vin: vin}, nil
}

func (c CustomCar) Brand() string { return c.brand }
func (c CustomCar) Model() string { return c.model }
func (c CustomCar) Year() int     { return c.year }
func (c CustomCar) Color() string { return c.color }
func (c CustomCar) VIN() string   { return c.vin }
