package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTitleRequired   = errors.New("title is required")
)

type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateProjectDTO) (*ProjectResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter ListProjectsFilter) ([]ProjectResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*ProjectResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateProjectDTO) (*ProjectResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CountCompletedByUser feeds goal progress computation.
	CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo ProjectRepository
}

func NewService(repo ProjectRepository) ProjectService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateProjectDTO) (*ProjectResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := ProjectStatus(strings.TrimSpace(dto.Status))
	if status == "" {
		status = StatusPlanned
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, dto.Status)
	}

	workType := WorkType(strings.TrimSpace(dto.WorkType))
	if workType != "" && !workType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkType, dto.WorkType)
	}

	primaryGoal := PrimaryGoal(strings.TrimSpace(dto.PrimaryGoal))
	if primaryGoal != "" && !primaryGoal.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrimaryGoal, dto.PrimaryGoal)
	}

	p := Project{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(dto.Title),
		Status:          status,
		Description:     dto.Description,
		WorkType:        workType,
		DurationText:    strings.TrimSpace(dto.DurationText),
		PrimaryGoal:     primaryGoal,
		ProblemSolved:   dto.ProblemSolved,
		ToolsUsed:       dto.ToolsUsed,
		SkillsUsed:      dto.SkillsUsed,
		OutcomeShort:    dto.OutcomeShort,
		SkillsToImprove: dto.SkillsToImprove,
		CertificateID:   dto.CertificateID,
		UserID:          userID,
	}

	// User text always wins; compose only when none was supplied.
	if strings.TrimSpace(p.Description) == "" {
		composed, err := Compose(&p)
		if err != nil {
			return nil, err
		}
		p.Description = composed
	}

	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to create project")
		return nil, err
	}

	log.WithField("project_id", p.ID).Info("Project created")
	return toResponse(&p), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, filter ListProjectsFilter) ([]ProjectResponse, error) {
	log := config.WithContext(ctx)

	projects, err := s.repo.FindAllByUserID(userID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list projects")
		return nil, err
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *toResponse(&projects[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*ProjectResponse, error) {
	p, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateProjectDTO) (*ProjectResponse, error) {
	log := config.WithContext(ctx)

	p, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrTitleRequired
		}
		p.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Status != nil {
		status := ProjectStatus(strings.TrimSpace(*dto.Status))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, *dto.Status)
		}
		p.Status = status
	}
	if dto.WorkType != nil {
		workType := WorkType(strings.TrimSpace(*dto.WorkType))
		if workType != "" && !workType.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWorkType, *dto.WorkType)
		}
		p.WorkType = workType
	}
	if dto.DurationText != nil {
		p.DurationText = strings.TrimSpace(*dto.DurationText)
	}
	if dto.PrimaryGoal != nil {
		primaryGoal := PrimaryGoal(strings.TrimSpace(*dto.PrimaryGoal))
		if primaryGoal != "" && !primaryGoal.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPrimaryGoal, *dto.PrimaryGoal)
		}
		p.PrimaryGoal = primaryGoal
	}
	if dto.ProblemSolved != nil {
		p.ProblemSolved = *dto.ProblemSolved
	}
	if dto.ToolsUsed != nil {
		p.ToolsUsed = *dto.ToolsUsed
	}
	if dto.SkillsUsed != nil {
		p.SkillsUsed = *dto.SkillsUsed
	}
	if dto.OutcomeShort != nil {
		p.OutcomeShort = *dto.OutcomeShort
	}
	if dto.SkillsToImprove != nil {
		p.SkillsToImprove = *dto.SkillsToImprove
	}
	if dto.CertificateID != nil {
		p.CertificateID = dto.CertificateID
	}

	// Description rules: explicit user text wins verbatim. A blank or
	// omitted description combined with guided-field changes re-runs the
	// composer; anything else (including status-only updates) leaves the
	// stored text untouched.
	descProvided := dto.Description != nil && strings.TrimSpace(*dto.Description) != ""
	descBlankOrOmitted := dto.Description == nil || strings.TrimSpace(*dto.Description) == ""

	switch {
	case descProvided:
		p.Description = *dto.Description
	case descBlankOrOmitted && guidedFieldsTouched(dto):
		composed, err := Compose(p)
		if err != nil {
			return nil, err
		}
		p.Description = composed
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to update project")
		return nil, err
	}
	return toResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete project")
		return err
	}

	log.WithField("project_id", id).Info("Project deleted")
	return nil
}

func (s *service) CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountCompletedByUserID(userID)
}

func guidedFieldsTouched(dto UpdateProjectDTO) bool {
	return dto.WorkType != nil ||
		dto.DurationText != nil ||
		dto.PrimaryGoal != nil ||
		dto.ProblemSolved != nil ||
		dto.ToolsUsed != nil ||
		dto.SkillsUsed != nil ||
		dto.OutcomeShort != nil ||
		dto.SkillsToImprove != nil
}

func (s *service) findOwned(id, userID uuid.UUID) (*Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	if p.UserID != userID {
		return nil, ErrUnauthorized
	}
	return p, nil
}

func toResponse(p *Project) *ProjectResponse {
	return &ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Status:          p.Status,
		Description:     p.Description,
		WorkType:        p.WorkType,
		DurationText:    p.DurationText,
		PrimaryGoal:     p.PrimaryGoal,
		ProblemSolved:   p.ProblemSolved,
		ToolsUsed:       p.ToolsUsed,
		SkillsUsed:      p.SkillsUsed,
		OutcomeShort:    p.OutcomeShort,
		SkillsToImprove: p.SkillsToImprove,
		CertificateID:   p.CertificateID,
		UserID:          p.UserID,
		DateCreated:     p.DateCreated,
	}
}
