package domain

// Resource is a person (or team) with a fixed weekly capacity in hours.
type Resource struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity"`
}

func (r *Resource) Validate() error {
	var errs ValidationErrors
	if r.ID == "" {
		errs = append(errs, ValidationError{Field: "resource.id", Value: r.ID, Message: "is required"})
	}
	if r.Name == "" {
		errs = append(errs, ValidationError{Field: "resource.name", Value: r.Name, Message: "is required"})
	}
	if r.Capacity <= 0 {
		errs = append(errs, ValidationError{Field: "resource.capacity", Value: r.Capacity, Message: "must be positive"})
	}
	return errs.OrNil()
}

// FindResource returns the resource with the given ID, or nil.
func FindResource(resources []Resource, id string) *Resource {
	for i := range resources {
		if resources[i].ID == id {
			return &resources[i]
		}
	}
	return nil
}
