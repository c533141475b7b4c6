package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spanteq/console/internal/models"
)

var recordDateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateRecordData checks every data value against the section's field
// set and collects one message per offending field, so the caller can
// highlight all problems at once. Keys without a matching field are
// tolerated (schema drift); a nil return means the data conforms.
func ValidateRecordData(fields []models.Field, data map[string]any) error {
	validation := NewValidationError("record data does not conform to the section schema")

	for _, field := range fields {
		value, present := data[field.Key]
		if !present || isEmptyValue(field.Kind, value) {
			if field.Required && field.Kind != models.FieldBoolean {
				validation.WithField(field.Key, field.Label+" is required")
			}
			continue
		}
		if message := validateValue(field, value); message != "" {
			validation.WithField(field.Key, message)
		}
	}

	if validation.HasFields() {
		return validation
	}
	return nil
}

// validateValue applies the per-kind rule. The switch is exhaustive over
// FieldKind so a new kind fails loudly here instead of passing silently.
func validateValue(field models.Field, value any) string {
	switch field.Kind {
	case models.FieldText:
		if _, ok := value.(string); !ok {
			return field.Label + " must be text"
		}
		return ""
	case models.FieldNumber:
		if !isFiniteNumber(value) {
			return field.Label + " must be a number"
		}
		return ""
	case models.FieldDate:
		text, ok := value.(string)
		if !ok || !isParseableDate(text) {
			return field.Label + " must be a valid date"
		}
		return ""
	case models.FieldBoolean:
		// Any JSON value coerces to truthy/falsy; nothing to reject.
		return ""
	case models.FieldSelect:
		text, ok := value.(string)
		if !ok || !field.HasOption(text) {
			return field.Label + " must be one of the configured options"
		}
		return ""
	case models.FieldMultiSelect:
		items, ok := value.([]any)
		if !ok {
			return field.Label + " must be a list of options"
		}
		for _, item := range items {
			text, ok := item.(string)
			if !ok || !field.HasOption(text) {
				return field.Label + " must contain only configured options"
			}
		}
		return ""
	case models.FieldFile, models.FieldRelation:
		// Opaque references: presence was already checked.
		return ""
	default:
		return fmt.Sprintf("%s has unsupported field type %q", field.Label, field.Kind)
	}
}

func isEmptyValue(kind models.FieldKind, value any) bool {
	if value == nil {
		return true
	}
	switch kind {
	case models.FieldBoolean, models.FieldNumber:
		return false
	case models.FieldMultiSelect:
		items, ok := value.([]any)
		return ok && len(items) == 0
	default:
		if text, ok := value.(string); ok {
			return strings.TrimSpace(text) == ""
		}
		return false
	}
}

func isFiniteNumber(value any) bool {
	switch number := value.(type) {
	case float64:
		return !math.IsInf(number, 0) && !math.IsNaN(number)
	case float32:
		return !math.IsInf(float64(number), 0) && !math.IsNaN(float64(number))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
		return err == nil && !math.IsInf(parsed, 0) && !math.IsNaN(parsed)
	default:
		return false
	}
}

func isParseableDate(value string) bool {
	trimmed := strings.TrimSpace(value)
	for _, layout := range recordDateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return true
		}
	}
	return false
}
