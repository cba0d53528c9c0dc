package claim

import (
	"context"
	"mealbridge-backend/entities"
	"mealbridge-backend/pkg/food"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		// ClaimFood flips the food to claimed and records the claim in one
		// transaction. It reports false when the food was not in the
		// available state, in which case nothing is written.
		ClaimFood(ctx context.Context, claim *entities.Claim) (bool, error)

		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetClaimsByUser(ctx context.Context, userID string) ([]*entities.Claim, error)
		GetAllClaims(ctx context.Context) ([]*entities.Claim, error)

		// ReleaseClaim deletes the claim and resets its food to available in
		// one transaction. When the claim row is already gone the food is
		// left untouched: it may belong to a newer claimant by now.
		ReleaseClaim(ctx context.Context, claim *entities.Claim) error
	}

	claimRepository struct {
		db             *gorm.DB
		foodRepository food.FoodRepository
	}
)

func NewClaimRepository(db *gorm.DB, foodRepository food.FoodRepository) ClaimRepository {
	return &claimRepository{db: db, foodRepository: foodRepository}
}

func (r *claimRepository) ClaimFood(ctx context.Context, claim *entities.Claim) (bool, error) {
	claimed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := r.foodRepository.MarkClaimed(tx, claim.FoodID.String(), claim.ClaimedBy.String())
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}

		if err := tx.Create(claim).Error; err != nil {
			return err
		}

		claimed = true
		return nil
	})

	return claimed, err
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Food.Creator").
		Preload("Claimant").
		Preload("Approver").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimsByUser(ctx context.Context, userID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim

	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Claimant").
		Where("claimed_by = ?", userID).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}

	return claims, nil
}

func (r *claimRepository) GetAllClaims(ctx context.Context) ([]*entities.Claim, error) {
	var claims []*entities.Claim

	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Claimant").
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}

	return claims, nil
}

func (r *claimRepository) ReleaseClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", claim.ID).Delete(&entities.Claim{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// Scoped to the releasing claimant so a stale release can never
		// unclaim a food someone else holds.
		_, err := r.foodRepository.MarkAvailable(tx, claim.FoodID.String(), claim.ClaimedBy.String())
		return err
	})
}
