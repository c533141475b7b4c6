package services

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type SalaryStore interface {
	FindByID(salaryID string) (models.Salary, error)
	ExistsForUserMonth(userID uint, month string, excludeID string) (bool, error)
	ListAll() ([]models.Salary, error)
	ListByUser(userID uint) ([]models.Salary, error)
	Create(salary *models.Salary) error
	Save(salary *models.Salary) error
	Delete(salaryID string) error
}

type SalaryUserReader interface {
	FindByID(userID uint) (models.User, error)
}

type ApprovedPTOReader interface {
	SumApprovedDays(userID uint, month string) (float64, error)
}

type SalaryService struct {
	salaries SalaryStore
	users    SalaryUserReader
	pto      ApprovedPTOReader
	calendar Calendar
}

func NewSalaryService(salaries SalaryStore, users SalaryUserReader, pto ApprovedPTOReader, calendar Calendar) *SalaryService {
	if calendar == nil {
		calendar = WeekdayCalendar{}
	}
	return &SalaryService{salaries: salaries, users: users, pto: pto, calendar: calendar}
}

func (service *SalaryService) Create(requester models.User, input models.Salary) (models.Salary, error) {
	target, err := service.loadTargetUser(input.UserID)
	if err != nil {
		return models.Salary{}, err
	}
	if !CanManageSalary(requester, target.Role) {
		return models.Salary{}, NewPermissionError("not allowed to manage pay for this user")
	}
	if err := ValidateSalaryInput(input, target.Role); err != nil {
		return models.Salary{}, err
	}

	taken, err := service.salaries.ExistsForUserMonth(input.UserID, input.Month, "")
	if err != nil {
		return models.Salary{}, err
	}
	if taken {
		return models.Salary{}, NewConflictError("a salary record already exists for this user and month")
	}

	input.ID = uuid.NewString()
	if input.Currency == "" {
		input.Currency = "USD"
	}
	if input.CustomFields == nil {
		input.CustomFields = map[string]any{}
	}
	if err := service.recompute(&input); err != nil {
		return models.Salary{}, err
	}
	if err := service.salaries.Create(&input); err != nil {
		return models.Salary{}, err
	}
	return input, nil
}

func (service *SalaryService) Update(requester models.User, salaryID string, input models.Salary) (models.Salary, error) {
	existing, err := service.salaries.FindByID(salaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Salary{}, NewNotFoundError("salary", salaryID)
		}
		return models.Salary{}, err
	}

	if input.UserID == 0 {
		input.UserID = existing.UserID
	}
	target, err := service.loadTargetUser(input.UserID)
	if err != nil {
		return models.Salary{}, err
	}
	if !CanManageSalary(requester, target.Role) {
		return models.Salary{}, NewPermissionError("not allowed to manage pay for this user")
	}
	if err := ValidateSalaryInput(input, target.Role); err != nil {
		return models.Salary{}, err
	}

	taken, err := service.salaries.ExistsForUserMonth(input.UserID, input.Month, salaryID)
	if err != nil {
		return models.Salary{}, err
	}
	if taken {
		return models.Salary{}, NewConflictError("a salary record already exists for this user and month")
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	if input.Currency == "" {
		input.Currency = existing.Currency
	}
	if input.CustomFields == nil {
		input.CustomFields = map[string]any{}
	}
	if err := service.recompute(&input); err != nil {
		return models.Salary{}, err
	}
	if err := service.salaries.Save(&input); err != nil {
		return models.Salary{}, err
	}
	return input, nil
}

func (service *SalaryService) Delete(requester models.User, salaryID string) error {
	if requester.Role != models.RoleAdmin {
		return NewPermissionError("only admins may delete salary records")
	}
	if _, err := service.salaries.FindByID(salaryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("salary", salaryID)
		}
		return err
	}
	return service.salaries.Delete(salaryID)
}

// List returns every salary row for admins and recruiters, and only the
// requester's own rows for candidates.
func (service *SalaryService) List(requester models.User) ([]models.Salary, error) {
	switch requester.Role {
	case models.RoleAdmin, models.RoleRecruiter:
		return service.salaries.ListAll()
	default:
		return service.salaries.ListByUser(requester.ID)
	}
}

func (service *SalaryService) Get(requester models.User, salaryID string) (models.Salary, error) {
	salary, err := service.salaries.FindByID(salaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Salary{}, NewNotFoundError("salary", salaryID)
		}
		return models.Salary{}, err
	}
	if requester.Role == models.RoleCandidate && salary.UserID != requester.ID {
		return models.Salary{}, NewPermissionError("not allowed to view this salary record")
	}
	return salary, nil
}

// Breakdown recomputes the month's pay breakdown from the stored
// configuration without mutating it.
func (service *SalaryService) Breakdown(salary models.Salary) (PayBreakdown, error) {
	month, err := ParseMonth(salary.Month)
	if err != nil {
		return PayBreakdown{}, NewValidationError("invalid salary configuration").
			WithField("month", "Month must be in YYYY-MM format")
	}
	offDays, err := service.resolveOffDays(salary)
	if err != nil {
		return PayBreakdown{}, err
	}
	return ComputeMonth(salary, month, offDays, service.calendar), nil
}

// Projection validates a transient configuration and projects it forward.
// Nothing is persisted.
func (service *SalaryService) Projection(input models.Salary, horizon int) ([]PayBreakdown, error) {
	if err := ValidateSalaryInput(input, ""); err != nil {
		return nil, err
	}
	if horizon <= 0 {
		return nil, NewValidationError("invalid projection request").
			WithField("months", "Projection horizon must be at least 1 month")
	}
	from, err := ParseMonth(input.Month)
	if err != nil {
		return nil, NewValidationError("invalid projection request").
			WithField("month", "Month must be in YYYY-MM format")
	}
	return ProjectWithCalendar(input, from, horizon, service.calendar), nil
}

// recompute refreshes the cached FinalAmount and UnpaidLeaveDays from the
// rest of the configuration. Off days fall back to approved PTO requests
// for the month when the row itself carries none.
func (service *SalaryService) recompute(salary *models.Salary) error {
	month, err := ParseMonth(salary.Month)
	if err != nil {
		return NewValidationError("invalid salary configuration").
			WithField("month", "Month must be in YYYY-MM format")
	}
	offDays, err := service.resolveOffDays(*salary)
	if err != nil {
		return err
	}
	breakdown := ComputeMonth(*salary, month, offDays, service.calendar)
	salary.UnpaidLeaveDays = breakdown.UnpaidLeaveDays
	salary.FinalAmount = breakdown.FinalAmount
	return nil
}

func (service *SalaryService) resolveOffDays(salary models.Salary) (float64, error) {
	if salary.OffDaysTaken > 0 || service.pto == nil {
		return salary.OffDaysTaken, nil
	}
	return service.pto.SumApprovedDays(salary.UserID, salary.Month)
}

func (service *SalaryService) loadTargetUser(userID uint) (models.User, error) {
	if userID == 0 {
		return models.User{}, NewValidationError("invalid salary configuration").
			WithField("user_id", "User is required")
	}
	target, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, NewNotFoundError("user", strconv.FormatUint(uint64(userID), 10))
		}
		return models.User{}, err
	}
	return target, nil
}
