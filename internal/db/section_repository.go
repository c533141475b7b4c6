package db

import (
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type SectionRepository struct {
	database *gorm.DB
}

func NewSectionRepository(database *gorm.DB) *SectionRepository {
	return &SectionRepository{database: database}
}

func (repo *SectionRepository) ListAll() ([]models.Section, error) {
	sections := make([]models.Section, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (repo *SectionRepository) FindByID(sectionID string) (models.Section, error) {
	var section models.Section
	if err := repo.database.First(&section, "id = ?", sectionID).Error; err != nil {
		return models.Section{}, err
	}
	return section, nil
}

func (repo *SectionRepository) FindBySlug(slug string) (models.Section, error) {
	var section models.Section
	if err := repo.database.First(&section, "slug = ?", slug).Error; err != nil {
		return models.Section{}, err
	}
	return section, nil
}

func (repo *SectionRepository) SlugTakenByOther(slug string, excludeID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Section{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *SectionRepository) Create(section *models.Section) error {
	return repo.database.Create(section).Error
}

func (repo *SectionRepository) Save(section *models.Section) error {
	return repo.database.Save(section).Error
}

// DeleteCascade removes the section together with its fields and records
// in one transaction. Irreversible.
func (repo *SectionRepository) DeleteCascade(sectionID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionID).Delete(&models.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", sectionID).Delete(&models.Field{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Section{}, "id = ?", sectionID).Error
	})
}

func (repo *SectionRepository) ListFields(sectionID string) ([]models.Field, error) {
	fields := make([]models.Field, 0)
	if err := repo.database.
		Where("section_id = ?", sectionID).
		Order("field_order ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (repo *SectionRepository) CountFields(sectionID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Field{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *SectionRepository) FindField(sectionID string, fieldID string) (models.Field, error) {
	var field models.Field
	if err := repo.database.
		First(&field, "id = ? AND section_id = ?", fieldID, sectionID).Error; err != nil {
		return models.Field{}, err
	}
	return field, nil
}

func (repo *SectionRepository) FieldKeyTakenByOther(sectionID string, key string, excludeID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Field{}).
		Where("section_id = ? AND key = ? AND id <> ?", sectionID, key, excludeID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *SectionRepository) CreateField(field *models.Field) error {
	return repo.database.Create(field).Error
}

func (repo *SectionRepository) SaveField(field *models.Field) error {
	return repo.database.Save(field).Error
}

// DeleteField removes the field definition and closes the resulting gap in
// the section's order sequence. Stored record values for the field's key
// are left untouched.
func (repo *SectionRepository) DeleteField(sectionID string, fieldID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var field models.Field
		if err := tx.First(&field, "id = ? AND section_id = ?", fieldID, sectionID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Field{}, "id = ?", fieldID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Field{}).
			Where("section_id = ? AND field_order > ?", sectionID, field.Order).
			UpdateColumn("field_order", gorm.Expr("field_order - 1")).Error
	})
}

// ApplyFieldOrders rewrites every field's order in one transaction. The
// caller validates that orders form a full permutation before calling;
// either all rows update or none do.
func (repo *SectionRepository) ApplyFieldOrders(sectionID string, orders map[string]int) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for fieldID, order := range orders {
			result := tx.Model(&models.Field{}).
				Where("id = ? AND section_id = ?", fieldID, sectionID).
				UpdateColumn("field_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
