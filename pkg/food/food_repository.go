package food

import (
	"context"
	"mealbridge-backend/entities"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error
		GetAvailableFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodsByCreator(ctx context.Context, userID string) ([]*entities.Food, error)

		// Status transitions. Both are conditional single-statement updates
		// meant to run inside a caller-owned transaction: MarkClaimed only
		// wins when the food is still available, MarkAvailable only resets a
		// food still held by the given claimant. The returned count is the
		// number of rows the transition actually touched.
		MarkClaimed(tx *gorm.DB, foodID, claimantID string) (int64, error)
		MarkAvailable(tx *gorm.DB, foodID, claimantID string) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Claimant").
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) GetAvailableFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food

	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("status = ? AND (expiry_date IS NULL OR expiry_date > ?)", "available", time.Now()).
		Order("created_at DESC").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) GetFoodsByCreator(ctx context.Context, userID string) ([]*entities.Food, error) {
	var foods []*entities.Food

	if err := r.db.WithContext(ctx).
		Preload("Claimant").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) MarkClaimed(tx *gorm.DB, foodID, claimantID string) (int64, error) {
	res := tx.Model(&entities.Food{}).
		Where("id = ? AND status = ?", foodID, "available").
		Updates(map[string]interface{}{
			"status":     "claimed",
			"claimed_by": claimantID,
		})
	return res.RowsAffected, res.Error
}

func (r *foodRepository) MarkAvailable(tx *gorm.DB, foodID, claimantID string) (int64, error) {
	res := tx.Model(&entities.Food{}).
		Where("id = ? AND claimed_by = ?", foodID, claimantID).
		Updates(map[string]interface{}{
			"status":     "available",
			"claimed_by": nil,
		})
	return res.RowsAffected, res.Error
}
