package analytics

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	"github.com/skillfolio/skillfolio-lambda/internal/goal"
)

// OwnedCounter counts rows belonging to one user. Satisfied by the
// certificate and project repositories.
type OwnedCounter interface {
	CountByUserID(userID uuid.UUID) (int64, error)
}

type Service interface {
	Summary(ctx context.Context, userID uuid.UUID) (*SummaryResponse, error)
	GoalsProgress(ctx context.Context, userID uuid.UUID) ([]goal.GoalResponse, error)
}

type service struct {
	certificates OwnedCounter
	projects     OwnedCounter
	goals        goal.GoalService
}

func NewService(certificates, projects OwnedCounter, goals goal.GoalService) Service {
	return &service{
		certificates: certificates,
		projects:     projects,
		goals:        goals,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *service) Summary(ctx context.Context, userID uuid.UUID) (*SummaryResponse, error) {
	log := config.WithContext(ctx)

	certCount, err := s.certificates.CountByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count certificates")
		return nil, err
	}
	projectCount, err := s.projects.CountByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count projects")
		return nil, err
	}

	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}

	var completed int64
	for i := range goals {
		if goals[i].Achieved {
			completed++
		}
	}

	total := int64(len(goals))
	var rate float64
	if total > 0 {
		rate = round1(100 * float64(completed) / float64(total))
	}

	return &SummaryResponse{
		CertificatesCount:          certCount,
		ProjectsCount:              projectCount,
		GoalsCount:                 total,
		GoalsCompletedCount:        completed,
		GoalsInProgressCount:       total - completed,
		GoalsCompletionRatePercent: rate,
	}, nil
}

func (s *service) GoalsProgress(ctx context.Context, userID uuid.UUID) ([]goal.GoalResponse, error) {
	return s.goals.List(ctx, userID)
}
