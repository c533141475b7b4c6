package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Role         string    `gorm:"not null;default:candidate" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
		return true
	}
	return false
}
