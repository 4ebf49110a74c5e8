package announcement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNoActiveFacts        = errors.New("no active facts available")
	ErrUnknownType          = errors.New("unknown announcement type")
)

type Service interface {
	List(ctx context.Context, filter ListAnnouncementsFilter) ([]Announcement, error)
	Get(ctx context.Context, id uuid.UUID) (*Announcement, error)
	RandomFact(ctx context.Context) (*Fact, error)
	SearchPlatforms(ctx context.Context, q, cost, certs string) *PlatformSearchResponse
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListAnnouncementsFilter) ([]Announcement, error) {
	log := config.WithContext(ctx)

	announcements, err := s.repo.FindAll(filter)
	if err != nil {
		log.WithError(err).Error("Failed to list announcements")
		return nil, err
	}
	return announcements, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAnnouncementNotFound
	}
	return a, nil
}

func (s *service) RandomFact(ctx context.Context) (*Fact, error) {
	log := config.WithContext(ctx)

	fact, err := s.repo.RandomActiveFact()
	if err != nil {
		log.WithError(err).Error("Failed to pick a random fact")
		return nil, err
	}
	if fact == nil {
		return nil, ErrNoActiveFacts
	}
	return fact, nil
}

func (s *service) SearchPlatforms(ctx context.Context, q, cost, certs string) *PlatformSearchResponse {
	return &PlatformSearchResponse{
		Query:     q,
		Platforms: SearchPlatforms(q, cost, certs),
	}
}
