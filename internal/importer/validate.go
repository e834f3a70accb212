package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/domain"
)

// DefaultDriverWeight applies when a driver omits its weight.
const DefaultDriverWeight = 5

// ValidateImportSchema checks the schema before conversion and returns every
// problem found. Field and reference rules are the same ones enforced when
// entities are edited directly.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	if len(schema.Drivers) == 0 {
		errs = append(errs, fmt.Errorf("drivers: at least one driver is required"))
	}
	if len(schema.Resources) == 0 && len(schema.Tasks) > 0 {
		errs = append(errs, fmt.Errorf("resources: tasks are listed but no resources are defined"))
	}

	portfolio := Convert(schema)
	if err := portfolio.Validate(); err != nil {
		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				errs = append(errs, e)
			}
		} else {
			errs = append(errs, err)
		}
	}
	return errs
}
