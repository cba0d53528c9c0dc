package claim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mealbridge-backend/domain"
	"mealbridge-backend/entities"
	"mealbridge-backend/internal/utils"
	"mealbridge-backend/internal/utils/mailing"
	"mealbridge-backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest, userID string) (domain.ClaimResponse, error)
		GetMyClaims(ctx context.Context, userID string) ([]domain.ClaimResponse, error)
		GetAllClaims(ctx context.Context) ([]domain.ClaimResponse, error)
		GetClaimByID(ctx context.Context, id string) (domain.ClaimResponse, error)
		GiveUp(ctx context.Context, claimID string, userID string) error
	}

	claimService struct {
		claimRepository ClaimRepository
		foodRepository  food.FoodRepository
	}
)

func NewClaimService(claimRepository ClaimRepository, foodRepository food.FoodRepository) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		foodRepository:  foodRepository,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest, userID string) (domain.ClaimResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ClaimResponse{}, domain.ErrParseUUID
	}

	foodUUID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return domain.ClaimResponse{}, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrFoodNotFound
		}
		return domain.ClaimResponse{}, err
	}

	if foodItem.CreatedBy == userUUID {
		return domain.ClaimResponse{}, domain.ErrOwnClaim
	}

	if foodItem.Status != domain.FoodStatusAvailable {
		return domain.ClaimResponse{}, domain.ErrFoodNotAvailable
	}

	claim := &entities.Claim{
		ID:        uuid.New(),
		FoodID:    foodUUID,
		ClaimedBy: userUUID,
		Status:    domain.ClaimStatusPending,
		Message:   req.Message,
	}

	// The repository performs the status flip and the claim insert in a
	// single transaction; losing a race to another claimant surfaces here as
	// claimed == false.
	claimed, err := s.claimRepository.ClaimFood(ctx, claim)
	if err != nil {
		return domain.ClaimResponse{}, err
	}
	if !claimed {
		return domain.ClaimResponse{}, domain.ErrFoodNotAvailable
	}

	s.notifyCreator(foodItem, claim)

	created, err := s.claimRepository.GetClaimByID(ctx, claim.ID.String())
	if err != nil {
		return domain.ClaimResponse{}, err
	}

	return toClaimResponse(created), nil
}

func (s *claimService) GetMyClaims(ctx context.Context, userID string) ([]domain.ClaimResponse, error) {
	claims, err := s.claimRepository.GetClaimsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		response = append(response, toClaimResponse(claim))
	}

	return response, nil
}

func (s *claimService) GetAllClaims(ctx context.Context) ([]domain.ClaimResponse, error) {
	claims, err := s.claimRepository.GetAllClaims(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		response = append(response, toClaimResponse(claim))
	}

	return response, nil
}

func (s *claimService) GetClaimByID(ctx context.Context, id string) (domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrClaimNotFound
		}
		return domain.ClaimResponse{}, err
	}

	return toClaimResponse(claim), nil
}

func (s *claimService) GiveUp(ctx context.Context, claimID string, userID string) error {
	claim, err := s.claimRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrClaimNotFound
		}
		return err
	}

	if claim.ClaimedBy.String() != userID {
		return domain.ErrNotClaimOwner
	}

	return s.claimRepository.ReleaseClaim(ctx, claim)
}

// notifyCreator emails the restaurant that published the food. Delivery is
// best effort and never affects the claim itself.
func (s *claimService) notifyCreator(foodItem *entities.Food, claim *entities.Claim) {
	if foodItem.Creator == nil || foodItem.Creator.Email == "" {
		return
	}
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}

	to := foodItem.Creator.Email
	subject := fmt.Sprintf("Your donation %q has been claimed", foodItem.Name)
	body := fmt.Sprintf(
		"<p>Good news! Your food donation <b>%s</b> has just been claimed.</p><p>Claim message: %s</p>",
		foodItem.Name, claim.Message,
	)

	go func() {
		if err := mailing.SendMail(to, subject, body); err != nil {
			log.Printf("failed to send claim notification: %v", err)
		}
	}()
}

func toClaimResponse(claim *entities.Claim) domain.ClaimResponse {
	response := domain.ClaimResponse{
		ID:        claim.ID.String(),
		Status:    claim.Status,
		Message:   claim.Message,
		CreatedAt: claim.CreatedAt,
	}

	if claim.Food != nil {
		foodResponse := toFoodSummary(claim.Food)
		response.Food = &foodResponse
	}

	if claim.Claimant != nil {
		claimant := toUserSummary(claim.Claimant)
		response.Claimant = &claimant
	}

	if claim.Approver != nil {
		approver := toUserSummary(claim.Approver)
		response.Approver = &approver
	}

	return response
}

func toFoodSummary(foodItem *entities.Food) domain.FoodResponse {
	response := domain.FoodResponse{
		ID:             foodItem.ID.String(),
		Name:           foodItem.Name,
		Description:    foodItem.Description,
		Quantity:       foodItem.Quantity,
		Type:           foodItem.Type,
		ExpiryDate:     foodItem.ExpiryDate,
		PickupLocation: foodItem.PickupLocation,
		Latitude:       foodItem.Latitude,
		Longitude:      foodItem.Longitude,
		ImageURL:       foodItem.ImageURL,
		Status:         foodItem.Status,
		CreatedAt:      foodItem.CreatedAt,
	}

	if foodItem.Creator != nil {
		creator := toUserSummary(foodItem.Creator)
		response.Creator = &creator
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
