package db

import (
	"github.com/spanteq/console/internal/models"
	"gorm.io/gorm"
)

type PTORepository struct {
	database *gorm.DB
}

func NewPTORepository(database *gorm.DB) *PTORepository {
	return &PTORepository{database: database}
}

func (repo *PTORepository) FindByID(requestID string) (models.PTORequest, error) {
	var request models.PTORequest
	if err := repo.database.First(&request, "id = ?", requestID).Error; err != nil {
		return models.PTORequest{}, err
	}
	return request, nil
}

func (repo *PTORepository) ListAll() ([]models.PTORequest, error) {
	requests := make([]models.PTORequest, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *PTORepository) ListByUser(userID uint) ([]models.PTORequest, error) {
	requests := make([]models.PTORequest, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// SumApprovedDays totals approved PTO days for one user and month. This
// is the off-days input to the salary engine when a salary row carries no
// explicit override.
func (repo *PTORepository) SumApprovedDays(userID uint, month string) (float64, error) {
	var total *float64
	if err := repo.database.Model(&models.PTORequest{}).
		Where("user_id = ? AND month = ? AND status = ?", userID, month, models.PTOStatusApproved).
		Select("SUM(days)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (repo *PTORepository) Create(request *models.PTORequest) error {
	return repo.database.Create(request).Error
}

func (repo *PTORepository) Save(request *models.PTORequest) error {
	return repo.database.Save(request).Error
}
