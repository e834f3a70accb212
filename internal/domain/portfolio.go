package domain

import (
	"fmt"
	"strings"
)

// Portfolio is a full snapshot of the four top-level collections. Views and
// the leveling engine work on a Portfolio read in one pass.
type Portfolio struct {
	Drivers   []Driver
	Projects  []Project
	Resources []Resource
	Tasks     []Task
}

// Validate checks every entity and the references between them: unique IDs
// per collection, score -> driver, task -> project and task -> resource.
func (p *Portfolio) Validate() error {
	var errs ValidationErrors
	collect := func(prefix string, err error) {
		if err == nil {
			return
		}
		var ve ValidationErrors
		switch e := err.(type) {
		case ValidationErrors:
			ve = e
		case ValidationError:
			ve = ValidationErrors{e}
		default:
			ve = ValidationErrors{{Field: prefix, Message: err.Error()}}
		}
		for _, v := range ve {
			// "project.name" under "projects[2]" becomes "projects[2].name"
			if i := strings.IndexByte(v.Field, '.'); i >= 0 {
				v.Field = prefix + v.Field[i:]
			} else {
				v.Field = prefix + "." + v.Field
			}
			errs = append(errs, v)
		}
	}
	dup := func(field, id string) {
		errs = append(errs, ValidationError{Field: field, Value: id, Message: "is duplicated"})
	}

	drivers := make(map[string]bool, len(p.Drivers))
	for i := range p.Drivers {
		d := &p.Drivers[i]
		collect(fmt.Sprintf("drivers[%d]", i), d.Validate())
		if drivers[d.ID] {
			dup(fmt.Sprintf("drivers[%d].id", i), d.ID)
		}
		drivers[d.ID] = true
	}

	projects := make(map[string]bool, len(p.Projects))
	for i := range p.Projects {
		pr := &p.Projects[i]
		prefix := fmt.Sprintf("projects[%d]", i)
		collect(prefix, pr.Validate())
		if projects[pr.ID] {
			dup(prefix+".id", pr.ID)
		}
		projects[pr.ID] = true
		for j, s := range pr.Scores {
			if s.DriverID != "" && !drivers[s.DriverID] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.scores[%d].driver_id", prefix, j),
					Value:   s.DriverID,
					Message: "references an unknown driver",
				})
			}
		}
	}

	resources := make(map[string]bool, len(p.Resources))
	for i := range p.Resources {
		r := &p.Resources[i]
		collect(fmt.Sprintf("resources[%d]", i), r.Validate())
		if resources[r.ID] {
			dup(fmt.Sprintf("resources[%d].id", i), r.ID)
		}
		resources[r.ID] = true
	}

	tasks := make(map[string]bool, len(p.Tasks))
	for i := range p.Tasks {
		t := &p.Tasks[i]
		prefix := fmt.Sprintf("tasks[%d]", i)
		collect(prefix, t.Validate())
		if tasks[t.ID] {
			dup(prefix+".id", t.ID)
		}
		tasks[t.ID] = true
		if t.ProjectID != "" && !projects[t.ProjectID] {
			errs = append(errs, ValidationError{Field: prefix + ".project_id", Value: t.ProjectID, Message: "references an unknown project"})
		}
		if t.IsAssigned() && !resources[t.ResourceID] {
			errs = append(errs, ValidationError{Field: prefix + ".resource_id", Value: t.ResourceID, Message: "references an unknown resource"})
		}
	}

	return errs.OrNil()
}

// Counts returns the size of each collection in declaration order.
func (p *Portfolio) Counts() (drivers, projects, resources, tasks int) {
	return len(p.Drivers), len(p.Projects), len(p.Resources), len(p.Tasks)
}
