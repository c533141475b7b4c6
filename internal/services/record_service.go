package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

const (
	defaultRecordPageSize = 20
	maxRecordPageSize     = 100
)

type RecordStore interface {
	FindByID(sectionID string, recordID string) (models.Record, error)
	CountBySection(sectionID string) (int64, error)
	ListPage(sectionID string, offset int, limit int) ([]models.Record, error)
	ListAll(sectionID string) ([]models.Record, error)
	Create(record *models.Record) error
	Save(record *models.Record) error
	Delete(sectionID string, recordID string) error
}

// RecordPage is one page of a section's records, newest first.
type RecordPage struct {
	Records []models.Record `json:"records"`
	Page    int             `json:"page"`
	Pages   int             `json:"pages"`
	Total   int             `json:"total"`
}

// RecordService stores and queries schema-conforming records. Every call
// receives the requesting user explicitly; section permissions are
// enforced here, not in the transport.
type RecordService struct {
	records  RecordStore
	sections *SectionService
}

func NewRecordService(records RecordStore, sections *SectionService) *RecordService {
	return &RecordService{records: records, sections: sections}
}

// List returns a stable-ordered page. Filters match against data values:
// substring (case-insensitive) for text, equality for everything else.
// Filter keys that name no field are ignored.
func (service *RecordService) List(requester models.User, slug string, page int, limit int, filters map[string]string) (RecordPage, error) {
	section, fields, err := service.sections.GetBySlug(slug)
	if err != nil {
		return RecordPage{}, err
	}
	if !section.CanRead(requester.Role) {
		return RecordPage{}, NewPermissionError("role may not read this section")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultRecordPageSize
	}
	if limit > maxRecordPageSize {
		limit = maxRecordPageSize
	}

	applicable := applicableFilters(fields, filters)
	if len(applicable) == 0 {
		total, err := service.records.CountBySection(section.ID)
		if err != nil {
			return RecordPage{}, err
		}
		records, err := service.records.ListPage(section.ID, (page-1)*limit, limit)
		if err != nil {
			return RecordPage{}, err
		}
		return buildRecordPage(records, page, limit, int(total)), nil
	}

	all, err := service.records.ListAll(section.ID)
	if err != nil {
		return RecordPage{}, err
	}
	matched := make([]models.Record, 0, len(all))
	for _, record := range all {
		if recordMatchesFilters(record, applicable) {
			matched = append(matched, record)
		}
	}

	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return buildRecordPage(matched[start:end], page, limit, len(matched)), nil
}

func (service *RecordService) Create(requester models.User, slug string, data map[string]any) (models.Record, error) {
	section, fields, err := service.sections.GetBySlug(slug)
	if err != nil {
		return models.Record{}, err
	}
	if !section.CanWrite(requester.Role) {
		return models.Record{}, NewPermissionError("role may not write to this section")
	}
	if data == nil {
		data = map[string]any{}
	}
	if err := ValidateRecordData(fields, data); err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		ID:        uuid.NewString(),
		SectionID: section.ID,
		Data:      data,
		CreatedBy: requester.ID,
	}
	if err := service.records.Create(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (service *RecordService) Update(requester models.User, slug string, recordID string, data map[string]any) (models.Record, error) {
	section, fields, err := service.sections.GetBySlug(slug)
	if err != nil {
		return models.Record{}, err
	}
	if !section.CanWrite(requester.Role) {
		return models.Record{}, NewPermissionError("role may not write to this section")
	}

	record, err := service.records.FindByID(section.ID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Record{}, NewNotFoundError("record", recordID)
		}
		return models.Record{}, err
	}

	if data == nil {
		data = map[string]any{}
	}
	if err := ValidateRecordData(fields, data); err != nil {
		return models.Record{}, err
	}

	record.Data = data
	if err := service.records.Save(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// Delete is a hard delete; there is no trash.
func (service *RecordService) Delete(requester models.User, slug string, recordID string) error {
	section, _, err := service.sections.GetBySlug(slug)
	if err != nil {
		return err
	}
	if !section.CanWrite(requester.Role) {
		return NewPermissionError("role may not write to this section")
	}
	if _, err := service.records.FindByID(section.ID, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("record", recordID)
		}
		return err
	}
	return service.records.Delete(section.ID, recordID)
}

// ListForExport returns a section's full record set, newest first, with
// its field schema, for the CSV renderer.
func (service *RecordService) ListForExport(requester models.User, slug string) ([]models.Field, []models.Record, error) {
	section, fields, err := service.sections.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if !section.CanRead(requester.Role) {
		return nil, nil, NewPermissionError("role may not read this section")
	}
	records, err := service.records.ListAll(section.ID)
	if err != nil {
		return nil, nil, err
	}
	return fields, records, nil
}

type recordFilter struct {
	field models.Field
	value string
}

func applicableFilters(fields []models.Field, filters map[string]string) []recordFilter {
	if len(filters) == 0 {
		return nil
	}
	byKey := make(map[string]models.Field, len(fields))
	for _, field := range fields {
		byKey[field.Key] = field
	}
	applicable := make([]recordFilter, 0, len(filters))
	for key, value := range filters {
		field, known := byKey[key]
		if !known || strings.TrimSpace(value) == "" {
			continue
		}
		applicable = append(applicable, recordFilter{field: field, value: strings.TrimSpace(value)})
	}
	return applicable
}

func recordMatchesFilters(record models.Record, filters []recordFilter) bool {
	for _, filter := range filters {
		value, present := record.Data[filter.field.Key]
		if !present {
			return false
		}
		if !valueMatchesFilter(filter.field.Kind, value, filter.value) {
			return false
		}
	}
	return true
}

func valueMatchesFilter(kind models.FieldKind, value any, wanted string) bool {
	switch kind {
	case models.FieldText:
		text, ok := value.(string)
		return ok && strings.Contains(strings.ToLower(text), strings.ToLower(wanted))
	case models.FieldMultiSelect:
		items, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if text, ok := item.(string); ok && text == wanted {
				return true
			}
		}
		return false
	default:
		return stringifyValue(value) == wanted
	}
}

func stringifyValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func buildRecordPage(records []models.Record, page int, limit int, total int) RecordPage {
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return RecordPage{Records: records, Page: page, Pages: pages, Total: total}
}
