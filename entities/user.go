package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // restaurant, ngo, volunteer
	Location string    `json:"location"`
	Avatar   string    `json:"avatar,omitempty"`

	Foods  []*Food  `gorm:"foreignKey:CreatedBy" json:"-"`
	Claims []*Claim `gorm:"foreignKey:ClaimedBy" json:"-"`
	Timestamp
}
