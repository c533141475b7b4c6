package services

import (
	"regexp"
	"strings"

	"github.com/spanteq/console/internal/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSectionInput checks name, slug shape and role lists before any
// section mutation. Slug uniqueness is checked separately against the
// store.
func ValidateSectionInput(section models.Section) error {
	validation := NewValidationError("invalid section")

	if strings.TrimSpace(section.Name) == "" {
		validation.WithField("name", "Name is required")
	}
	slug := strings.TrimSpace(section.Slug)
	if slug == "" {
		validation.WithField("slug", "Slug is required")
	} else if !slugPattern.MatchString(slug) {
		validation.WithField("slug", "Slug may contain only lowercase letters, digits and hyphens")
	}

	for _, role := range section.ReadRoles {
		if !models.IsKnownRole(role) {
			validation.WithField("read_roles", "Unknown role: "+role)
			break
		}
	}
	for _, role := range section.WriteRoles {
		if !models.IsKnownRole(role) {
			validation.WithField("write_roles", "Unknown role: "+role)
			break
		}
	}

	if validation.HasFields() {
		return validation
	}
	return nil
}

// ValidateFieldInput checks a field definition. Select and multiselect
// fields must declare at least one option; other kinds must not carry
// any.
func ValidateFieldInput(field models.Field) error {
	validation := NewValidationError("invalid field")

	if strings.TrimSpace(field.Key) == "" {
		validation.WithField("key", "Key is required")
	}
	if strings.TrimSpace(field.Label) == "" {
		validation.WithField("label", "Label is required")
	}
	if !models.IsKnownFieldKind(field.Kind) {
		validation.WithField("type", "Unknown field type: "+string(field.Kind))
	}

	switch field.Kind {
	case models.FieldSelect, models.FieldMultiSelect:
		if len(field.Options) == 0 {
			validation.WithField("options", "At least one option is required")
		} else {
			for _, option := range field.Options {
				if strings.TrimSpace(option.Value) == "" {
					validation.WithField("options", "Option values must not be empty")
					break
				}
			}
		}
	}

	if validation.HasFields() {
		return validation
	}
	return nil
}
