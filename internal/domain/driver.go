package domain

import "fmt"

// Driver weights are edited on a 0-10 slider; 0 switches a driver off.
const (
	MinDriverWeight = 0
	MaxDriverWeight = 10
)

// Driver is a strategic business driver that projects are scored against.
type Driver struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

func (d *Driver) Validate() error {
	var errs ValidationErrors
	if d.ID == "" {
		errs = append(errs, ValidationError{Field: "driver.id", Value: d.ID, Message: "is required"})
	}
	if d.Name == "" {
		errs = append(errs, ValidationError{Field: "driver.name", Value: d.Name, Message: "is required"})
	}
	if err := ValidateWeight(d.Weight); err != nil {
		errs = append(errs, err.(ValidationError))
	}
	return errs.OrNil()
}

// ValidateWeight checks a driver weight against the slider bounds.
func ValidateWeight(w int) error {
	if w < MinDriverWeight || w > MaxDriverWeight {
		return ValidationError{
			Field:   "driver.weight",
			Value:   w,
			Message: fmt.Sprintf("must be between %d and %d", MinDriverWeight, MaxDriverWeight),
		}
	}
	return nil
}
