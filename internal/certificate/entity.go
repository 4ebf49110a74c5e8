package certificate

import (
	"time"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/user"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type Certificate struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title      string        `gorm:"not null" json:"title"`
	Issuer     string        `gorm:"not null" json:"issuer"`
	DateEarned util.DateOnly `gorm:"type:date;not null" json:"date_earned"`
	FileURL    string        `json:"file_url,omitempty"`
	UserID     uuid.UUID     `gorm:"column:user_id;not null;index" json:"user_id"`
	User       user.User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
