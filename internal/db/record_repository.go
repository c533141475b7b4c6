package db

import (
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) FindByID(sectionID string, recordID string) (models.Record, error) {
	var record models.Record
	if err := repo.database.
		First(&record, "id = ? AND section_id = ?", recordID, sectionID).Error; err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (repo *RecordRepository) CountBySection(sectionID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Record{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListPage returns one page of a section's records, newest first.
func (repo *RecordRepository) ListPage(sectionID string, offset int, limit int) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := repo.database.
		Where("section_id = ?", sectionID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll returns every record of a section, newest first. Used when
// value filters must be applied before pagination.
func (repo *RecordRepository) ListAll(sectionID string) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := repo.database.
		Where("section_id = ?", sectionID).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) Create(record *models.Record) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) Save(record *models.Record) error {
	return repo.database.Save(record).Error
}

func (repo *RecordRepository) Delete(sectionID string, recordID string) error {
	return repo.database.Delete(&models.Record{}, "id = ? AND section_id = ?", recordID, sectionID).Error
}
