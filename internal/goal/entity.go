package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/user"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type Goal struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	TargetProjects int            `gorm:"not null;default:1" json:"target_projects"`
	Deadline       *util.DateOnly `gorm:"type:date" json:"deadline,omitempty"`

	// Denormalized step counters, rewritten inside the same transaction
	// as every step mutation.
	TotalSteps     int `gorm:"not null;default:0" json:"total_steps"`
	CompletedSteps int `gorm:"not null;default:0" json:"completed_steps"`

	UserID uuid.UUID `gorm:"column:user_id;not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Steps []GoalStep `gorm:"foreignKey:GoalID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoalStep struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;index" json:"goal_id"`
	Goal   *Goal     `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title  string `gorm:"not null" json:"title"`
	IsDone bool   `gorm:"not null;default:false" json:"is_done"`
	Order  int    `gorm:"column:order;not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
