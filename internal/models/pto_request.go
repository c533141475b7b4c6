package models

import "time"

const (
	PTOStatusPending  = "pending"
	PTOStatusApproved = "approved"
	PTOStatusRejected = "rejected"
)

// PTORequest is a month-scoped request for paid time off. Approved days
// for a (user, month) pair feed the salary engine as off days taken when
// the salary row carries no explicit override.
type PTORequest struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Month     string    `gorm:"not null;index" json:"month"`
	Days      float64   `gorm:"not null" json:"days"`
	Reason    string    `json:"reason"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	DecidedBy *uint     `json:"decided_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
