package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type PTOStore interface {
	FindByID(requestID string) (models.PTORequest, error)
	ListAll() ([]models.PTORequest, error)
	ListByUser(userID uint) ([]models.PTORequest, error)
	SumApprovedDays(userID uint, month string) (float64, error)
	Create(request *models.PTORequest) error
	Save(request *models.PTORequest) error
}

// PTOService manages time-off requests. Approved days per month are what
// the salary engine reads as off days taken.
type PTOService struct {
	requests PTOStore
}

func NewPTOService(requests PTOStore) *PTOService {
	return &PTOService{requests: requests}
}

func (service *PTOService) Create(requester models.User, month string, days float64, reason string) (models.PTORequest, error) {
	validation := NewValidationError("invalid PTO request")
	if month == "" {
		validation.WithField("month", "Month is required")
	} else if _, err := ParseMonth(month); err != nil {
		validation.WithField("month", "Month must be in YYYY-MM format")
	}
	if days <= 0 {
		validation.WithField("days", "Days must be greater than zero")
	}
	if validation.HasFields() {
		return models.PTORequest{}, validation
	}

	request := models.PTORequest{
		ID:     uuid.NewString(),
		UserID: requester.ID,
		Month:  month,
		Days:   days,
		Reason: strings.TrimSpace(reason),
		Status: models.PTOStatusPending,
	}
	if err := service.requests.Create(&request); err != nil {
		return models.PTORequest{}, err
	}
	return request, nil
}

// List returns all requests for admins and recruiters, and only the
// requester's own for candidates.
func (service *PTOService) List(requester models.User) ([]models.PTORequest, error) {
	switch requester.Role {
	case models.RoleAdmin, models.RoleRecruiter:
		return service.requests.ListAll()
	default:
		return service.requests.ListByUser(requester.ID)
	}
}

// Decide approves or rejects a pending request. Deciding twice is a
// conflict, not an update.
func (service *PTOService) Decide(requester models.User, requestID string, approve bool) (models.PTORequest, error) {
	if requester.Role != models.RoleAdmin {
		return models.PTORequest{}, NewPermissionError("only admins may decide PTO requests")
	}

	request, err := service.requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PTORequest{}, NewNotFoundError("pto request", requestID)
		}
		return models.PTORequest{}, err
	}
	if request.Status != models.PTOStatusPending {
		return models.PTORequest{}, NewConflictError("PTO request already decided")
	}

	if approve {
		request.Status = models.PTOStatusApproved
	} else {
		request.Status = models.PTOStatusRejected
	}
	deciderID := requester.ID
	request.DecidedBy = &deciderID

	if err := service.requests.Save(&request); err != nil {
		return models.PTORequest{}, err
	}
	return request, nil
}
