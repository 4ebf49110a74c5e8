package project

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(p *Project) error
	FindAllByUserID(userID uuid.UUID, filter ListProjectsFilter) ([]Project, error)
	FindByID(id uuid.UUID) (*Project, error)
	Update(p *Project) error
	Delete(id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
	CountCompletedByUserID(userID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProjectRepository {
	return &repository{db: db}
}

func (r *repository) Create(p *Project) error {
	return r.db.Create(p).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID, filter ListProjectsFilter) ([]Project, error) {
	q := r.db.Where("user_id = ?", userID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.CertificateID != nil {
		q = q.Where("certificate_id = ?", *filter.CertificateID)
	}

	var projects []Project
	if err := q.Order("date_created DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Project, error) {
	var p Project
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(p *Project) error {
	return r.db.Save(p).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Project{}, "id = ?", id).Error
}

func (r *repository) CountByUserID(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&Project{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *repository) CountCompletedByUserID(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&Project{}).
		Where("user_id = ? AND status = ?", userID, StatusCompleted).
		Count(&n).Error
	return n, err
}
