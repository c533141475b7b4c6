package models

import "time"

// Record is one schema-conforming data instance belonging to a Section.
// Data keys are validated against the section's field set at write time;
// keys left behind by deleted fields are tolerated on read.
type Record struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	SectionID string         `gorm:"not null;index" json:"section_id"`
	Data      map[string]any `gorm:"serializer:json" json:"data"`
	CreatedBy uint           `gorm:"not null" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
