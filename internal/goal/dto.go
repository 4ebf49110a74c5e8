package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type CreateGoalDTO struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TargetProjects int            `json:"target_projects"`
	Deadline       *util.DateOnly `json:"deadline"`
}

type UpdateGoalDTO struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	TargetProjects *int           `json:"target_projects"`
	Deadline       *util.DateOnly `json:"deadline"`
}

type CreateStepDTO struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type UpdateStepDTO struct {
	Title  *string `json:"title"`
	IsDone *bool   `json:"is_done"`
	Order  *int    `json:"order"`
}

type GoalResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	TargetProjects int            `json:"target_projects"`
	Deadline       *util.DateOnly `json:"deadline,omitempty"`
	TotalSteps     int            `json:"total_steps"`
	CompletedSteps int            `json:"completed_steps"`

	CompletedProjects       int64   `json:"completed_projects"`
	ProjectsProgressPercent float64 `json:"projects_progress_percent"`
	StepsProgressPercent    float64 `json:"steps_progress_percent"`
	Achieved                bool    `json:"achieved"`

	// Steps come back in display order so clients never need a second
	// request to render the checklist.
	Steps []StepResponse `json:"steps"`

	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StepResponse struct {
	ID        uuid.UUID `json:"id"`
	GoalID    uuid.UUID `json:"goal_id"`
	Title     string    `json:"title"`
	IsDone    bool      `json:"is_done"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
