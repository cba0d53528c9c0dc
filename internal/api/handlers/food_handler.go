package handlers

import (
	"errors"
	"mealbridge-backend/domain"
	"mealbridge-backend/internal/api/presenters"
	"mealbridge-backend/pkg/claim"
	"mealbridge-backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		ClaimFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		SubmitFeedback(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService  food.FoodService
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, claimService claim.ClaimService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:  foodService,
		claimService: claimService,
		validator:    validator,
	}
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetAvailableFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	foods, err := h.foodService.GetMyFoods(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	foodID := c.Params("id")

	res, err := h.foodService.GetFoodByID(c.Context(), foodID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoods, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), foodID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFood, err)
		case errors.Is(err, domain.ErrNotFoodOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

// ClaimFood is the NGO-gated claim variant mounted under the food routes. It
// drives the same claim flow as POST /api/claims and responds with the
// claimed food.
func (h *foodHandler) ClaimFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")

	req := domain.CreateClaimRequest{FoodID: foodID}

	if _, err := h.claimService.CreateClaim(c.Context(), req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedClaimFood, err)
		case errors.Is(err, domain.ErrFoodNotAvailable):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedClaimFood, err)
		case errors.Is(err, domain.ErrOwnClaim):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedClaimFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimFood, err)
	}

	res, err := h.foodService.GetFoodByID(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaimFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")

	if err := h.foodService.DeleteFood(c.Context(), foodID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFood, err)
		case errors.Is(err, domain.ErrNotFoodOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) SubmitFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")
	req := new(domain.SubmitFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitFeedback, err)
	}

	res, err := h.foodService.SubmitFeedback(c.Context(), foodID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSubmitFeedback, err)
		case errors.Is(err, domain.ErrNotClaimant):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedSubmitFeedback, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSubmitFeedback)
}
