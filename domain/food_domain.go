package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood        = "food item added successfully"
	MessageSuccessUpdateFood     = "food item updated successfully"
	MessageSuccessDeleteFood     = "food item deleted successfully"
	MessageSuccessGetFoods       = "food items retrieved successfully"
	MessageSuccessClaimFood      = "food claimed successfully"
	MessageSuccessSubmitFeedback = "feedback submitted successfully"

	MessageFailedAddFood        = "failed to add food item"
	MessageFailedUpdateFood     = "failed to update food item"
	MessageFailedDeleteFood     = "failed to delete food item"
	MessageFailedGetFoods       = "failed to retrieve food items"
	MessageFailedClaimFood      = "failed to claim food"
	MessageFailedSubmitFeedback = "failed to submit feedback"

	ErrFoodNotFound     = errors.New("food not found")
	ErrFoodNotAvailable = errors.New("food already claimed by someone else")
	ErrNotFoodOwner     = errors.New("not authorized to modify this food")
	ErrNotClaimant      = errors.New("only the current claimant can submit feedback")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidExpiry    = errors.New("invalid expiry date")
)

type (
	AddFoodRequest struct {
		Name           string `json:"name" validate:"required"`
		Description    string `json:"description" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		Type           string `json:"type" validate:"required,oneof=veg non-veg"`
		ExpiryDate     string `json:"expiry_date" validate:"omitempty"`
		PickupLocation string `json:"pickup_location" validate:"required"`
		ImageURL       string `json:"image_url" validate:"omitempty,url"`
	}

	UpdateFoodRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Description    string `json:"description" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		Type           string `json:"type" validate:"omitempty,oneof=veg non-veg"`
		ExpiryDate     string `json:"expiry_date" validate:"omitempty"`
		PickupLocation string `json:"pickup_location" validate:"omitempty"`
		ImageURL       string `json:"image_url" validate:"omitempty,url"`
	}

	SubmitFeedbackRequest struct {
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Feedback string `json:"feedback" validate:"omitempty"`
	}

	FoodResponse struct {
		ID             string        `json:"id"`
		Name           string        `json:"name"`
		Description    string        `json:"description,omitempty"`
		Quantity       int           `json:"quantity"`
		Type           string        `json:"type"`
		ExpiryDate     *time.Time    `json:"expiry_date,omitempty"`
		PickupLocation string        `json:"pickup_location"`
		Latitude       *float64      `json:"latitude,omitempty"`
		Longitude      *float64      `json:"longitude,omitempty"`
		ImageURL       string        `json:"image_url,omitempty"`
		Status         string        `json:"status"`
		Rating         *int          `json:"rating,omitempty"`
		Feedback       string        `json:"feedback,omitempty"`
		Creator        *UserResponse `json:"creator,omitempty"`
		Claimant       *UserResponse `json:"claimant,omitempty"`
		CreatedAt      time.Time     `json:"created_at"`
	}
)
