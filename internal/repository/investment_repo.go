package repository

import (
	"errors"

	"github.com/interest-tracker/internal/models"
	"gorm.io/gorm"
)

var ErrInvestmentNotFound = errors.New("investment not found")

// InvestmentRepository handles investment data access. All lookups are scoped
// to the owning user; there is no cross-user access path.
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new InvestmentRepository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment record
func (r *InvestmentRepository) Create(investment *models.Investment) error {
	return r.db.Create(investment).Error
}

// GetByUserID retrieves the user's most recent investments
func (r *InvestmentRepository) GetByUserID(userID uint, limit int) ([]models.Investment, error) {
	var investments []models.Investment
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&investments)
	return investments, result.Error
}

// GetAllByUserID retrieves every investment for a user, newest first
func (r *InvestmentRepository) GetAllByUserID(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments)
	return investments, result.Error
}

// GetByIDAndUserID retrieves one investment owned by the given user
func (r *InvestmentRepository) GetByIDAndUserID(id int64, userID uint) (*models.Investment, error) {
	var investment models.Investment
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&investment)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrInvestmentNotFound
	}
	return &investment, result.Error
}

// Update persists changes to an existing investment
func (r *InvestmentRepository) Update(investment *models.Investment) error {
	return r.db.Save(investment).Error
}

// DeleteByIDAndUserID deletes one investment owned by the given user
func (r *InvestmentRepository) DeleteByIDAndUserID(id int64, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvestmentNotFound
	}
	return nil
}

// DeleteAllByUserID deletes every investment owned by the given user
func (r *InvestmentRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Investment{}).Error
}

// CountWithoutOwner counts rows created before the owner column existed
func (r *InvestmentRepository) CountWithoutOwner() (int64, error) {
	var count int64
	err := r.db.Model(&models.Investment{}).
		Where("user_id = 0 OR user_id IS NULL").
		Count(&count).Error
	return count, err
}

// AssignOwner backfills ownerless rows with the given default owner
func (r *InvestmentRepository) AssignOwner(userID uint) error {
	return r.db.Model(&models.Investment{}).
		Where("user_id = 0 OR user_id IS NULL").
		Update("user_id", userID).Error
}
