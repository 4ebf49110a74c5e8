package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/certificate"
	"github.com/skillfolio/skillfolio-lambda/internal/user"
)

type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Status      ProjectStatus `gorm:"not null;default:'planned'" json:"status"`
	Description string        `gorm:"type:text" json:"description"`

	// Guided answers used to compose a description when none is supplied.
	WorkType        WorkType    `json:"work_type,omitempty"`
	DurationText    string      `json:"duration_text,omitempty"`
	PrimaryGoal     PrimaryGoal `json:"primary_goal,omitempty"`
	ProblemSolved   string      `gorm:"type:text" json:"problem_solved,omitempty"`
	ToolsUsed       string      `gorm:"type:text" json:"tools_used,omitempty"`
	SkillsUsed      string      `gorm:"type:text" json:"skills_used,omitempty"`
	OutcomeShort    string      `gorm:"type:text" json:"outcome_short,omitempty"`
	SkillsToImprove string      `gorm:"type:text" json:"skills_to_improve,omitempty"`

	CertificateID *uuid.UUID               `gorm:"type:uuid;index" json:"certificate_id,omitempty"`
	Certificate   *certificate.Certificate `gorm:"foreignKey:CertificateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserID uuid.UUID `gorm:"column:user_id;not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	UpdatedAt   time.Time `json:"updated_at"`
}
