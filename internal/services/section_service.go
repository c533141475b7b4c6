package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type SectionStore interface {
	ListAll() ([]models.Section, error)
	FindByID(sectionID string) (models.Section, error)
	FindBySlug(slug string) (models.Section, error)
	SlugTakenByOther(slug string, excludeID string) (bool, error)
	Create(section *models.Section) error
	Save(section *models.Section) error
	DeleteCascade(sectionID string) error

	ListFields(sectionID string) ([]models.Field, error)
	CountFields(sectionID string) (int64, error)
	FindField(sectionID string, fieldID string) (models.Field, error)
	FieldKeyTakenByOther(sectionID string, key string, excludeID string) (bool, error)
	CreateField(field *models.Field) error
	SaveField(field *models.Field) error
	DeleteField(sectionID string, fieldID string) error
	ApplyFieldOrders(sectionID string, orders map[string]int) error
}

// SectionService owns the runtime schema: sections and their ordered
// typed fields. All mutations are admin-only; reads are open to any
// authenticated role (record access is gated separately per section).
type SectionService struct {
	sections SectionStore
}

func NewSectionService(sections SectionStore) *SectionService {
	return &SectionService{sections: sections}
}

func (service *SectionService) List() ([]models.Section, error) {
	return service.sections.ListAll()
}

func (service *SectionService) GetBySlug(slug string) (models.Section, []models.Field, error) {
	section, err := service.sections.FindBySlug(strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Section{}, nil, NewNotFoundError("section", slug)
		}
		return models.Section{}, nil, err
	}
	fields, err := service.sections.ListFields(section.ID)
	if err != nil {
		return models.Section{}, nil, err
	}
	return section, fields, nil
}

func (service *SectionService) GetByID(sectionID string) (models.Section, error) {
	section, err := service.sections.FindByID(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Section{}, NewNotFoundError("section", sectionID)
		}
		return models.Section{}, err
	}
	return section, nil
}

func (service *SectionService) Create(requester models.User, input models.Section) (models.Section, error) {
	if requester.Role != models.RoleAdmin {
		return models.Section{}, NewPermissionError("only admins may define sections")
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	if err := ValidateSectionInput(input); err != nil {
		return models.Section{}, err
	}

	taken, err := service.sections.SlugTakenByOther(input.Slug, "")
	if err != nil {
		return models.Section{}, err
	}
	if taken {
		return models.Section{}, NewConflictError("slug already in use by another section")
	}

	input.ID = uuid.NewString()
	if input.ReadRoles == nil {
		input.ReadRoles = []string{}
	}
	if input.WriteRoles == nil {
		input.WriteRoles = []string{}
	}
	if err := service.sections.Create(&input); err != nil {
		return models.Section{}, err
	}
	return input, nil
}

func (service *SectionService) Update(requester models.User, sectionID string, input models.Section) (models.Section, error) {
	if requester.Role != models.RoleAdmin {
		return models.Section{}, NewPermissionError("only admins may define sections")
	}
	existing, err := service.GetByID(sectionID)
	if err != nil {
		return models.Section{}, err
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.ReadRoles == nil {
		input.ReadRoles = existing.ReadRoles
	}
	if input.WriteRoles == nil {
		input.WriteRoles = existing.WriteRoles
	}
	if err := ValidateSectionInput(input); err != nil {
		return models.Section{}, err
	}

	taken, err := service.sections.SlugTakenByOther(input.Slug, existing.ID)
	if err != nil {
		return models.Section{}, err
	}
	if taken {
		return models.Section{}, NewConflictError("slug already in use by another section")
	}

	if err := service.sections.Save(&input); err != nil {
		return models.Section{}, err
	}
	return input, nil
}

// Delete removes the section and everything under it. Confirmation is
// the caller's problem; there is no undo.
func (service *SectionService) Delete(requester models.User, sectionID string) error {
	if requester.Role != models.RoleAdmin {
		return NewPermissionError("only admins may delete sections")
	}
	if _, err := service.GetByID(sectionID); err != nil {
		return err
	}
	return service.sections.DeleteCascade(sectionID)
}

func (service *SectionService) ListFields(sectionID string) ([]models.Field, error) {
	if _, err := service.GetByID(sectionID); err != nil {
		return nil, err
	}
	return service.sections.ListFields(sectionID)
}

func (service *SectionService) AddField(requester models.User, sectionID string, input models.Field) (models.Field, error) {
	if requester.Role != models.RoleAdmin {
		return models.Field{}, NewPermissionError("only admins may define fields")
	}
	if _, err := service.GetByID(sectionID); err != nil {
		return models.Field{}, err
	}

	input.SectionID = sectionID
	input.Key = strings.TrimSpace(input.Key)
	input.Label = strings.TrimSpace(input.Label)
	if err := ValidateFieldInput(input); err != nil {
		return models.Field{}, err
	}

	taken, err := service.sections.FieldKeyTakenByOther(sectionID, input.Key, "")
	if err != nil {
		return models.Field{}, err
	}
	if taken {
		return models.Field{}, NewConflictError("field key already in use in this section")
	}

	if input.Order <= 0 {
		count, err := service.sections.CountFields(sectionID)
		if err != nil {
			return models.Field{}, err
		}
		input.Order = int(count) + 1
	}

	input.ID = uuid.NewString()
	if input.Options == nil {
		input.Options = []models.FieldOption{}
	}
	if err := service.sections.CreateField(&input); err != nil {
		return models.Field{}, err
	}
	return input, nil
}

func (service *SectionService) UpdateField(requester models.User, sectionID string, fieldID string, input models.Field) (models.Field, error) {
	if requester.Role != models.RoleAdmin {
		return models.Field{}, NewPermissionError("only admins may define fields")
	}
	existing, err := service.sections.FindField(sectionID, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Field{}, NewNotFoundError("field", fieldID)
		}
		return models.Field{}, err
	}

	input.ID = existing.ID
	input.SectionID = existing.SectionID
	input.CreatedAt = existing.CreatedAt
	input.Key = strings.TrimSpace(input.Key)
	input.Label = strings.TrimSpace(input.Label)
	if input.Order <= 0 {
		input.Order = existing.Order
	}
	if err := ValidateFieldInput(input); err != nil {
		return models.Field{}, err
	}

	taken, err := service.sections.FieldKeyTakenByOther(sectionID, input.Key, existing.ID)
	if err != nil {
		return models.Field{}, err
	}
	if taken {
		return models.Field{}, NewConflictError("field key already in use in this section")
	}

	if input.Options == nil {
		input.Options = []models.FieldOption{}
	}
	if err := service.sections.SaveField(&input); err != nil {
		return models.Field{}, err
	}
	return input, nil
}

// DeleteField drops the definition only; values already stored under the
// field's key stay in record data.
func (service *SectionService) DeleteField(requester models.User, sectionID string, fieldID string) error {
	if requester.Role != models.RoleAdmin {
		return NewPermissionError("only admins may define fields")
	}
	if _, err := service.sections.FindField(sectionID, fieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("field", fieldID)
		}
		return err
	}
	return service.sections.DeleteField(sectionID, fieldID)
}

// FieldOrder is one entry of a reorder payload.
type FieldOrder struct {
	FieldID string `json:"field_id"`
	Order   int    `json:"order"`
}

// ReorderFields rewrites the order of every field in the section at
// once. The payload must cover exactly the section's field set and the
// submitted orders must form a permutation of 1..N; anything else is a
// conflict and leaves the stored order untouched.
func (service *SectionService) ReorderFields(requester models.User, sectionID string, orders []FieldOrder) error {
	if requester.Role != models.RoleAdmin {
		return NewPermissionError("only admins may reorder fields")
	}
	fields, err := service.ListFields(sectionID)
	if err != nil {
		return err
	}

	if len(orders) != len(fields) {
		return NewConflictError("reorder payload must cover every field of the section")
	}

	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		known[field.ID] = struct{}{}
	}

	assigned := make(map[string]int, len(orders))
	seenOrders := make(map[int]struct{}, len(orders))
	for _, entry := range orders {
		if _, exists := known[entry.FieldID]; !exists {
			return NewConflictError("reorder payload references a field outside the section")
		}
		if _, duplicate := assigned[entry.FieldID]; duplicate {
			return NewConflictError("reorder payload repeats a field")
		}
		if entry.Order < 1 || entry.Order > len(fields) {
			return NewConflictError("reorder payload orders must form a contiguous 1..N sequence")
		}
		if _, duplicate := seenOrders[entry.Order]; duplicate {
			return NewConflictError("reorder payload orders must form a contiguous 1..N sequence")
		}
		assigned[entry.FieldID] = entry.Order
		seenOrders[entry.Order] = struct{}{}
	}

	return service.sections.ApplyFieldOrders(sectionID, assigned)
}
