package models

import "time"

// Section is an admin-defined category of records with its own field
// schema and role permissions. Records are keyed by SectionID, never by
// slug, so slug renames do not orphan data.
type Section struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon       string    `json:"icon"`
	ReadRoles  []string  `gorm:"serializer:json" json:"read_roles"`
	WriteRoles []string  `gorm:"serializer:json" json:"write_roles"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CanRead reports whether role may list or fetch records of the section.
// Admin bypasses the role lists entirely.
func (section Section) CanRead(role string) bool {
	return role == RoleAdmin || containsRole(section.ReadRoles, role)
}

func (section Section) CanWrite(role string) bool {
	return role == RoleAdmin || containsRole(section.WriteRoles, role)
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
