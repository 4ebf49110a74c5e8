package certificate

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTitleRequired       = errors.New("title is required")
	ErrIssuerRequired      = errors.New("issuer is required")
	ErrDateEarnedInFuture  = errors.New("date_earned cannot be in the future")
	ErrDateEarnedRequired  = errors.New("date_earned is required")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateCertificateDTO) (*CertificateResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]CertificateResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*CertificateResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCertificateDTO) (*CertificateResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateDateEarned(d util.DateOnly) error {
	if d.IsZero() {
		return ErrDateEarnedRequired
	}
	if d.After(util.Today()) {
		return ErrDateEarnedInFuture
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateCertificateDTO) (*CertificateResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(dto.Issuer) == "" {
		return nil, ErrIssuerRequired
	}
	if err := validateDateEarned(dto.DateEarned); err != nil {
		return nil, err
	}

	c := Certificate{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(dto.Title),
		Issuer:     strings.TrimSpace(dto.Issuer),
		DateEarned: dto.DateEarned,
		FileURL:    strings.TrimSpace(dto.FileURL),
		UserID:     userID,
	}
	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create certificate")
		return nil, err
	}

	log.WithField("certificate_id", c.ID).Info("Certificate created")
	return s.toResponse(&c), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]CertificateResponse, error) {
	log := config.WithContext(ctx)

	certs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list certificates")
		return nil, err
	}

	responses := make([]CertificateResponse, 0, len(certs))
	for i := range certs {
		responses = append(responses, *s.toResponse(&certs[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*CertificateResponse, error) {
	c, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateCertificateDTO) (*CertificateResponse, error) {
	log := config.WithContext(ctx)

	c, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrTitleRequired
		}
		c.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Issuer != nil {
		if strings.TrimSpace(*dto.Issuer) == "" {
			return nil, ErrIssuerRequired
		}
		c.Issuer = strings.TrimSpace(*dto.Issuer)
	}
	if dto.DateEarned != nil {
		if err := validateDateEarned(*dto.DateEarned); err != nil {
			return nil, err
		}
		c.DateEarned = *dto.DateEarned
	}
	if dto.FileURL != nil {
		c.FileURL = strings.TrimSpace(*dto.FileURL)
	}

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Failed to update certificate")
		return nil, err
	}
	return s.toResponse(c), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete certificate")
		return err
	}

	log.WithField("certificate_id", id).Info("Certificate deleted")
	return nil
}

func (s *service) findOwned(id, userID uuid.UUID) (*Certificate, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCertificateNotFound
	}
	if c.UserID != userID {
		return nil, ErrUnauthorized
	}
	return c, nil
}

func (s *service) toResponse(c *Certificate) *CertificateResponse {
	count, err := s.repo.CountLinkedProjects(c.ID)
	if err != nil {
		count = 0
	}
	return &CertificateResponse{
		ID:           c.ID,
		Title:        c.Title,
		Issuer:       c.Issuer,
		DateEarned:   c.DateEarned,
		FileURL:      c.FileURL,
		ProjectCount: count,
		UserID:       c.UserID,
		CreatedAt:    c.CreatedAt,
	}
}
