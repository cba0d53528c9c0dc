package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateClaim = "food claimed successfully"
	MessageSuccessGetClaims   = "claims retrieved successfully"
	MessageSuccessGiveUp      = "food is now available again"

	MessageFailedCreateClaim = "failed to claim food"
	MessageFailedGetClaims   = "failed to retrieve claims"
	MessageFailedGiveUp      = "failed to give up claim"

	ErrClaimNotFound = errors.New("claim not found")
	ErrNotClaimOwner = errors.New("not authorized to release this claim")
	ErrOwnClaim      = errors.New("cannot claim your own food")
)

type (
	CreateClaimRequest struct {
		FoodID  string `json:"food_id" validate:"required,uuid"`
		Message string `json:"message" validate:"omitempty"`
	}

	ClaimResponse struct {
		ID        string        `json:"id"`
		Status    string        `json:"status"`
		Message   string        `json:"message,omitempty"`
		Food      *FoodResponse `json:"food,omitempty"`
		Claimant  *UserResponse `json:"claimant,omitempty"`
		Approver  *UserResponse `json:"approver,omitempty"`
		CreatedAt time.Time     `json:"created_at"`
	}
)
