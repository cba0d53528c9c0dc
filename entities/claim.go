package entities

import (
	"github.com/google/uuid"
)

type Claim struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID     uuid.UUID  `json:"food_id"`
	ClaimedBy  uuid.UUID  `json:"claimed_by"`
	Status     string     `json:"status"` // pending, approved, rejected, completed
	Message    string     `json:"message,omitempty"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`

	Food     *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Claimant *User `gorm:"foreignKey:ClaimedBy" json:"claimant,omitempty"`
	Approver *User `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
	Timestamp
}
