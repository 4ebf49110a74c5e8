package goal

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrStepNotFound      = errors.New("goal step not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTitleRequired     = errors.New("title is required")
	ErrStepTitleRequired = errors.New("step title is required")
	ErrDeadlineInPast    = errors.New("deadline cannot be in the past")
)

// CompletedProjectCounter reports how many of a user's projects are
// completed. Satisfied by the project service.
type CompletedProjectCounter interface {
	CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type GoalService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	CreateStep(ctx context.Context, goalID, userID uuid.UUID, dto CreateStepDTO) (*StepResponse, error)
	ListSteps(ctx context.Context, goalID, userID uuid.UUID) ([]StepResponse, error)
	UpdateStep(ctx context.Context, stepID, userID uuid.UUID, dto UpdateStepDTO) (*StepResponse, error)
	DeleteStep(ctx context.Context, stepID, userID uuid.UUID) error

	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo     GoalRepository
	projects CompletedProjectCounter
}

func NewService(repo GoalRepository, projects CompletedProjectCounter) GoalService {
	return &service{repo: repo, projects: projects}
}

func validateDeadline(deadline *util.DateOnly) error {
	if deadline != nil && deadline.Before(util.Today()) {
		return ErrDeadlineInPast
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}
	target := dto.TargetProjects
	if target == 0 {
		target = 1
	}
	if target < 0 {
		return nil, ErrTargetProjectsInvalid
	}
	if err := validateDeadline(dto.Deadline); err != nil {
		return nil, err
	}

	g := Goal{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(dto.Title),
		Description:    dto.Description,
		TargetProjects: target,
		Deadline:       dto.Deadline,
		UserID:         userID,
	}

	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return s.toResponse(ctx, &g)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]GoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}

	// One count serves every goal of the same owner.
	completed, err := s.projects.CountCompletedByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to count completed projects")
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		steps, err := s.repo.FindStepsByGoalID(goals[i].ID)
		if err != nil {
			log.WithError(err).Error("Failed to list goal steps")
			return nil, err
		}
		resp, err := buildResponse(&goals[i], completed, steps)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error) {
	g, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, g)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrTitleRequired
		}
		g.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.TargetProjects != nil {
		if *dto.TargetProjects < 1 {
			return nil, ErrTargetProjectsInvalid
		}
		g.TargetProjects = *dto.TargetProjects
	}
	if dto.Deadline != nil {
		if err := validateDeadline(dto.Deadline); err != nil {
			return nil, err
		}
		g.Deadline = dto.Deadline
	}

	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}
	return s.toResponse(ctx, g)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	log.WithField("goal_id", id).Info("Goal deleted")
	return nil
}

func (s *service) CreateStep(ctx context.Context, goalID, userID uuid.UUID, dto CreateStepDTO) (*StepResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(goalID, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrStepTitleRequired
	}

	step := GoalStep{
		ID:     uuid.New(),
		GoalID: g.ID,
		Title:  strings.TrimSpace(dto.Title),
		Order:  dto.Order,
	}

	if err := s.repo.CreateStep(&step); err != nil {
		log.WithError(err).Error("Failed to create goal step")
		return nil, err
	}

	log.WithField("step_id", step.ID).Info("Goal step created")
	return stepToResponse(&step), nil
}

func (s *service) ListSteps(ctx context.Context, goalID, userID uuid.UUID) ([]StepResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(goalID, userID)
	if err != nil {
		return nil, err
	}

	steps, err := s.repo.FindStepsByGoalID(g.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list goal steps")
		return nil, err
	}

	responses := make([]StepResponse, 0, len(steps))
	for i := range steps {
		responses = append(responses, *stepToResponse(&steps[i]))
	}
	return responses, nil
}

func (s *service) UpdateStep(ctx context.Context, stepID, userID uuid.UUID, dto UpdateStepDTO) (*StepResponse, error) {
	log := config.WithContext(ctx)

	step, err := s.findOwnedStep(stepID, userID)
	if err != nil {
		return nil, err
	}

	wasDone := step.IsDone

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrStepTitleRequired
		}
		step.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.IsDone != nil {
		step.IsDone = *dto.IsDone
	}
	if dto.Order != nil {
		step.Order = *dto.Order
	}

	if err := s.repo.UpdateStep(step, wasDone); err != nil {
		log.WithError(err).Error("Failed to update goal step")
		return nil, err
	}
	return stepToResponse(step), nil
}

func (s *service) DeleteStep(ctx context.Context, stepID, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	step, err := s.findOwnedStep(stepID, userID)
	if err != nil {
		return err
	}

	clamped, err := s.repo.DeleteStep(step)
	if err != nil {
		log.WithError(err).Error("Failed to delete goal step")
		return err
	}
	if clamped {
		log.WithField("goal_id", step.GoalID).Warn("Step counters were clamped during delete")
	}

	log.WithField("step_id", stepID).Info("Goal step deleted")
	return nil
}

func (s *service) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountByUserID(userID)
}

func (s *service) findOwned(id, userID uuid.UUID) (*Goal, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	if g.UserID != userID {
		return nil, ErrUnauthorized
	}
	return g, nil
}

func (s *service) findOwnedStep(stepID, userID uuid.UUID) (*GoalStep, error) {
	step, err := s.repo.FindStepByID(stepID)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return nil, ErrStepNotFound
	}
	if _, err := s.findOwned(step.GoalID, userID); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}
	return step, nil
}

func (s *service) toResponse(ctx context.Context, g *Goal) (*GoalResponse, error) {
	completed, err := s.projects.CountCompletedByUser(ctx, g.UserID)
	if err != nil {
		return nil, err
	}
	steps, err := s.repo.FindStepsByGoalID(g.ID)
	if err != nil {
		return nil, err
	}
	return buildResponse(g, completed, steps)
}

func buildResponse(g *Goal, completedProjects int64, steps []GoalStep) (*GoalResponse, error) {
	projectsPct, err := ComputeProjectProgress(g, completedProjects)
	if err != nil {
		return nil, err
	}
	stepsPct, err := ComputeStepsProgress(g)
	if err != nil {
		return nil, err
	}

	stepResponses := make([]StepResponse, 0, len(steps))
	for i := range steps {
		stepResponses = append(stepResponses, *stepToResponse(&steps[i]))
	}

	return &GoalResponse{
		ID:                      g.ID,
		Title:                   g.Title,
		Description:             g.Description,
		TargetProjects:          g.TargetProjects,
		Deadline:                g.Deadline,
		TotalSteps:              g.TotalSteps,
		CompletedSteps:          g.CompletedSteps,
		CompletedProjects:       completedProjects,
		ProjectsProgressPercent: projectsPct,
		StepsProgressPercent:    stepsPct,
		Achieved:                IsAchieved(g, completedProjects),
		Steps:                   stepResponses,
		UserID:                  g.UserID,
		CreatedAt:               g.CreatedAt,
	}, nil
}

func stepToResponse(step *GoalStep) *StepResponse {
	return &StepResponse{
		ID:        step.ID,
		GoalID:    step.GoalID,
		Title:     step.Title,
		IsDone:    step.IsDone,
		Order:     step.Order,
		CreatedAt: step.CreatedAt,
	}
}
