package certificate

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Certificate) error
	FindAllByUserID(userID uuid.UUID) ([]Certificate, error)
	FindByID(id uuid.UUID) (*Certificate, error)
	Update(c *Certificate) error
	Delete(id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
	CountLinkedProjects(certificateID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Certificate) error {
	return r.db.Create(c).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Certificate, error) {
	var certs []Certificate
	if err := r.db.
		Where("user_id = ?", userID).
		Order("date_earned DESC, created_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Certificate, error) {
	var c Certificate
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(c *Certificate) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Certificate{}, "id = ?", id).Error
}

func (r *repository) CountByUserID(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&Certificate{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// CountLinkedProjects queries the projects table directly; importing the
// project package here would create an import cycle.
func (r *repository) CountLinkedProjects(certificateID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Table("projects").Where("certificate_id = ?", certificateID).Count(&n).Error
	return n, err
}
