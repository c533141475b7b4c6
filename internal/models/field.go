package models

import "time"

// FieldKind is the closed set of value types a field can declare. Record
// validation and CSV serialization switch exhaustively on it.
type FieldKind string

const (
	FieldText        FieldKind = "text"
	FieldNumber      FieldKind = "number"
	FieldDate        FieldKind = "date"
	FieldBoolean     FieldKind = "boolean"
	FieldSelect      FieldKind = "select"
	FieldMultiSelect FieldKind = "multiselect"
	FieldFile        FieldKind = "file"
	FieldRelation    FieldKind = "relation"
)

func KnownFieldKinds() []FieldKind {
	return []FieldKind{
		FieldText,
		FieldNumber,
		FieldDate,
		FieldBoolean,
		FieldSelect,
		FieldMultiSelect,
		FieldFile,
		FieldRelation,
	}
}

func IsKnownFieldKind(kind FieldKind) bool {
	for _, candidate := range KnownFieldKinds() {
		if candidate == kind {
			return true
		}
	}
	return false
}

// FieldOption is one choice of a select/multiselect field.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is a single typed, ordered attribute definition within a Section.
// Order values are dense and 1-based within a section; reordering rewrites
// all of them in one transaction.
type Field struct {
	ID        string        `gorm:"primaryKey;type:text" json:"id"`
	SectionID string        `gorm:"not null;index;uniqueIndex:uidx_section_key" json:"section_id"`
	Key       string        `gorm:"not null;uniqueIndex:uidx_section_key" json:"key"`
	Label     string        `gorm:"not null" json:"label"`
	Kind      FieldKind     `gorm:"not null" json:"type"`
	Options   []FieldOption `gorm:"serializer:json" json:"options,omitempty"`
	Required  bool          `gorm:"not null;default:false" json:"required"`
	Order     int           `gorm:"column:field_order;not null" json:"order"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (field Field) HasOption(value string) bool {
	for _, option := range field.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}
