package announcement

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindAll(filter ListAnnouncementsFilter) ([]Announcement, error)
	FindByID(id uuid.UUID) (*Announcement, error)
	RandomActiveFact() (*Fact, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(filter ListAnnouncementsFilter) ([]Announcement, error) {
	q := r.db.Model(&Announcement{})

	if filter.Platform != "" {
		q = q.Where("LOWER(platform) = LOWER(?)", filter.Platform)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.StartsAtAfter != nil {
		q = q.Where("starts_at >= ?", *filter.StartsAtAfter)
	}
	if filter.EndsAtBefore != nil {
		q = q.Where("ends_at <= ?", *filter.EndsAtBefore)
	}

	var announcements []Announcement
	err := q.Order("starts_at DESC, created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *repository) FindByID(id uuid.UUID) (*Announcement, error) {
	var a Announcement
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) RandomActiveFact() (*Fact, error) {
	var fact Fact
	err := r.db.Where("active = ?", true).Order("RANDOM()").First(&fact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fact, nil
}
