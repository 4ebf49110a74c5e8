package project

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectDTO struct {
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	Description     string     `json:"description"`
	WorkType        string     `json:"work_type"`
	DurationText    string     `json:"duration_text"`
	PrimaryGoal     string     `json:"primary_goal"`
	ProblemSolved   string     `json:"problem_solved"`
	ToolsUsed       string     `json:"tools_used"`
	SkillsUsed      string     `json:"skills_used"`
	OutcomeShort    string     `json:"outcome_short"`
	SkillsToImprove string     `json:"skills_to_improve"`
	CertificateID   *uuid.UUID `json:"certificate_id"`
}

type UpdateProjectDTO struct {
	Title           *string    `json:"title"`
	Status          *string    `json:"status"`
	Description     *string    `json:"description"`
	WorkType        *string    `json:"work_type"`
	DurationText    *string    `json:"duration_text"`
	PrimaryGoal     *string    `json:"primary_goal"`
	ProblemSolved   *string    `json:"problem_solved"`
	ToolsUsed       *string    `json:"tools_used"`
	SkillsUsed      *string    `json:"skills_used"`
	OutcomeShort    *string    `json:"outcome_short"`
	SkillsToImprove *string    `json:"skills_to_improve"`
	CertificateID   *uuid.UUID `json:"certificate_id"`
}

type ProjectResponse struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Status          ProjectStatus `json:"status"`
	Description     string        `json:"description"`
	WorkType        WorkType      `json:"work_type,omitempty"`
	DurationText    string        `json:"duration_text,omitempty"`
	PrimaryGoal     PrimaryGoal   `json:"primary_goal,omitempty"`
	ProblemSolved   string        `json:"problem_solved,omitempty"`
	ToolsUsed       string        `json:"tools_used,omitempty"`
	SkillsUsed      string        `json:"skills_used,omitempty"`
	OutcomeShort    string        `json:"outcome_short,omitempty"`
	SkillsToImprove string        `json:"skills_to_improve,omitempty"`
	CertificateID   *uuid.UUID    `json:"certificate_id,omitempty"`
	UserID          uuid.UUID     `json:"user_id"`
	DateCreated     time.Time     `json:"date_created"`
}

type ListProjectsFilter struct {
	Status        *ProjectStatus
	CertificateID *uuid.UUID
}
