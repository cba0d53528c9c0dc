package handlers

import (
	"errors"
	"mealbridge-backend/domain"
	"mealbridge-backend/internal/api/presenters"
	"mealbridge-backend/pkg/claim"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetMyClaims(c *fiber.Ctx) error
		GetAllClaims(c *fiber.Ctx) error
		GetClaimDetails(c *fiber.Ctx) error
		GiveUp(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	res, err := h.claimService.CreateClaim(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateClaim, err)
		case errors.Is(err, domain.ErrFoodNotAvailable):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateClaim, err)
		case errors.Is(err, domain.ErrOwnClaim):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedCreateClaim, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetMyClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.claimService.GetMyClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, claims, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetAllClaims(c *fiber.Ctx) error {
	claims, err := h.claimService.GetAllClaims(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, claims, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetClaimDetails(c *fiber.Ctx) error {
	claimID := c.Params("id")

	res, err := h.claimService.GetClaimByID(c.Context(), claimID)
	if err != nil {
		if errors.Is(err, domain.ErrClaimNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetClaims, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GiveUp(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("claimId")

	if err := h.claimService.GiveUp(c.Context(), claimID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrClaimNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGiveUp, err)
		case errors.Is(err, domain.ErrNotClaimOwner):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGiveUp, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGiveUp, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessGiveUp)
}
