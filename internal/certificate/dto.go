package certificate

import (
	"time"

	"github.com/google/uuid"
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type CreateCertificateDTO struct {
	Title      string        `json:"title"`
	Issuer     string        `json:"issuer"`
	DateEarned util.DateOnly `json:"date_earned"`
	FileURL    string        `json:"file_url"`
}

type UpdateCertificateDTO struct {
	Title      *string        `json:"title"`
	Issuer     *string        `json:"issuer"`
	DateEarned *util.DateOnly `json:"date_earned"`
	FileURL    *string        `json:"file_url"`
}

type CertificateResponse struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Issuer       string        `json:"issuer"`
	DateEarned   util.DateOnly `json:"date_earned"`
	FileURL      string        `json:"file_url,omitempty"`
	ProjectCount int64         `json:"project_count"`
	UserID       uuid.UUID     `json:"user_id"`
	CreatedAt    time.Time     `json:"created_at"`
}
