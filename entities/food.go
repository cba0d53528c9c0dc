package entities

import (
	"time"

	"github.com/google/uuid"
)

type Food struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Quantity       int        `json:"quantity"`
	Type           string     `json:"type"` // veg, non-veg
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	PickupLocation string     `json:"pickup_location"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Status         string     `json:"status"` // available, claimed, expired
	ClaimedBy      *uuid.UUID `json:"claimed_by,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`

	Creator  *User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Claimant *User    `gorm:"foreignKey:ClaimedBy" json:"claimant,omitempty"`
	ClaimLog []*Claim `gorm:"foreignKey:FoodID" json:"-"`
	Timestamp
}
