package domain

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks a service entry. Target may be empty (it is
// normalized to TargetBlank), anything else must be a known target.
func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.URL, validation.Required),
		validation.Field(&s.Target, validation.In(TargetBlank, TargetSelf)),
	)
}

// Validate checks a category and all of its services.
func (c Category) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
	); err != nil {
		return err
	}
	for i, svc := range c.Services {
		if err := svc.Validate(); err != nil {
			return fmt.Errorf("category %q: service %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Validate checks a whole document: every category is valid and
// category names are unique. Title and columns are not validated
// because absent or out-of-range values fall back to defaults.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Categories))
	for _, cat := range d.Categories {
		if err := cat.Validate(); err != nil {
			return err
		}
		if seen[cat.Name] {
			return fmt.Errorf("category %q: %w", cat.Name, ErrDuplicateName)
		}
		seen[cat.Name] = true
	}
	return nil
}
