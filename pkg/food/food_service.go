package food

import (
	"context"
	"errors"
	"mealbridge-backend/domain"
	"mealbridge-backend/entities"
	"mealbridge-backend/pkg/geocode"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error)
		GetAvailableFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string, userID string) error
		SubmitFeedback(ctx context.Context, id string, req domain.SubmitFeedbackRequest, userID string) (domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		geocodeService geocode.GeocodeService
	}
)

func NewFoodService(foodRepository FoodRepository, geocodeService geocode.GeocodeService) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		geocodeService: geocodeService,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidExpiry
		}
		expiryDate = &parsed
	}

	food := &entities.Food{
		ID:             uuid.New(),
		CreatedBy:      userUUID,
		Name:           req.Name,
		Description:    req.Description,
		Quantity:       req.Quantity,
		Type:           req.Type,
		ExpiryDate:     expiryDate,
		PickupLocation: req.PickupLocation,
		ImageURL:       req.ImageURL,
		Status:         domain.FoodStatusAvailable,
	}

	// Coordinate resolution is best effort: an unresolvable address never
	// blocks the donation.
	if coords := s.geocodeService.Resolve(ctx, req.PickupLocation); coords != nil {
		food.Latitude = &coords.Latitude
		food.Longitude = &coords.Longitude
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) GetAvailableFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAvailableFoods(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}

	return response, nil
}

func (s *foodService) GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoodsByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}

	return response, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if food.CreatedBy.String() != userID {
		return domain.FoodResponse{}, domain.ErrNotFoodOwner
	}

	if req.Name != "" {
		food.Name = req.Name
	}

	if req.Description != "" {
		food.Description = req.Description
	}

	if req.Quantity > 0 {
		food.Quantity = req.Quantity
	}

	if req.Type != "" {
		food.Type = req.Type
	}

	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidExpiry
		}
		food.ExpiryDate = &parsed
	}

	if req.ImageURL != "" {
		food.ImageURL = req.ImageURL
	}

	if req.PickupLocation != "" && req.PickupLocation != food.PickupLocation {
		food.PickupLocation = req.PickupLocation
		food.Latitude = nil
		food.Longitude = nil
		if coords := s.geocodeService.Resolve(ctx, req.PickupLocation); coords != nil {
			food.Latitude = &coords.Latitude
			food.Longitude = &coords.Longitude
		}
	}

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if food.CreatedBy.String() != userID {
		return domain.ErrNotFoodOwner
	}

	return s.foodRepository.DeleteFood(ctx, id)
}

func (s *foodService) SubmitFeedback(ctx context.Context, id string, req domain.SubmitFeedbackRequest, userID string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if food.ClaimedBy == nil || food.ClaimedBy.String() != userID {
		return domain.FoodResponse{}, domain.ErrNotClaimant
	}

	if req.Rating < 1 || req.Rating > 5 {
		return domain.FoodResponse{}, domain.ErrInvalidRating
	}

	rating := req.Rating
	food.Rating = &rating
	food.Feedback = req.Feedback

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

// presentStatus reports expired for available items whose expiry date has
// passed. The stored status is left untouched; the listing query applies the
// same cutoff.
func presentStatus(food *entities.Food) string {
	if food.Status == domain.FoodStatusAvailable && food.ExpiryDate != nil && food.ExpiryDate.Before(time.Now()) {
		return domain.FoodStatusExpired
	}
	return food.Status
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	response := domain.FoodResponse{
		ID:             food.ID.String(),
		Name:           food.Name,
		Description:    food.Description,
		Quantity:       food.Quantity,
		Type:           food.Type,
		ExpiryDate:     food.ExpiryDate,
		PickupLocation: food.PickupLocation,
		Latitude:       food.Latitude,
		Longitude:      food.Longitude,
		ImageURL:       food.ImageURL,
		Status:         presentStatus(food),
		Rating:         food.Rating,
		Feedback:       food.Feedback,
		CreatedAt:      food.CreatedAt,
	}

	if food.Creator != nil {
		creator := toUserSummary(food.Creator)
		response.Creator = &creator
	}

	if food.Claimant != nil {
		claimant := toUserSummary(food.Claimant)
		response.Claimant = &claimant
	}

	return response
}

func toUserSummary(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Location: user.Location,
	}
}
