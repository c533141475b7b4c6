package db

import (
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type SalaryRepository struct {
	database *gorm.DB
}

func NewSalaryRepository(database *gorm.DB) *SalaryRepository {
	return &SalaryRepository{database: database}
}

func (repo *SalaryRepository) FindByID(salaryID string) (models.Salary, error) {
	var salary models.Salary
	if err := repo.database.First(&salary, "id = ?", salaryID).Error; err != nil {
		return models.Salary{}, err
	}
	return salary, nil
}

func (repo *SalaryRepository) ExistsForUserMonth(userID uint, month string, excludeID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Salary{}).
		Where("user_id = ? AND month = ? AND id <> ?", userID, month, excludeID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *SalaryRepository) ListAll() ([]models.Salary, error) {
	salaries := make([]models.Salary, 0)
	if err := repo.database.Order("month DESC, user_id ASC").Find(&salaries).Error; err != nil {
		return nil, err
	}
	return salaries, nil
}

func (repo *SalaryRepository) ListByUser(userID uint) ([]models.Salary, error) {
	salaries := make([]models.Salary, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("month DESC").
		Find(&salaries).Error; err != nil {
		return nil, err
	}
	return salaries, nil
}

func (repo *SalaryRepository) Create(salary *models.Salary) error {
	return repo.database.Create(salary).Error
}

func (repo *SalaryRepository) Save(salary *models.Salary) error {
	return repo.database.Save(salary).Error
}

func (repo *SalaryRepository) Delete(salaryID string) error {
	return repo.database.Delete(&models.Salary{}, "id = ?", salaryID).Error
}
