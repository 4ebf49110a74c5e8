package announcement

import (
	"time"

	"github.com/google/uuid"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
	"gorm.io/datatypes"
)

type Type string

const (
	TypeEnrollment Type = "enrollment"
	TypeDiscount   Type = "discount"
)

func (t Type) IsValid() bool {
	return t == TypeEnrollment || t == TypeDiscount
}

// Announcement is a course enrollment or discount pulled from a
// learning platform. Discount fields stay nil on enrollment rows.
type Announcement struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Platform string    `gorm:"not null;index" json:"platform"`
	Type     Type      `gorm:"not null;index" json:"type"`
	URL      string    `gorm:"not null" json:"url"`

	StartsAt *util.DateOnly `gorm:"type:date;index" json:"starts_at,omitempty"`
	EndsAt   *util.DateOnly `gorm:"type:date;index" json:"ends_at,omitempty"`

	DiscountPct   *int     `json:"discount_pct,omitempty"`
	PriceOriginal *float64 `gorm:"type:numeric(9,2)" json:"price_original,omitempty"`
	PriceCurrent  *float64 `gorm:"type:numeric(9,2)" json:"price_current,omitempty"`

	Tags datatypes.JSON `json:"tags,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Fact is a short "did you know" blurb shown on the home page.
type Fact struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Source    string    `json:"source,omitempty"`
	SourceURL string    `json:"source_url,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
