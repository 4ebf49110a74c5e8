package goal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stepOrdering = `"order" ASC, created_at ASC, id ASC`

type GoalRepository interface {
	Create(g *Goal) error
	FindAllByUserID(userID uuid.UUID) ([]Goal, error)
	FindByID(id uuid.UUID) (*Goal, error)
	Update(g *Goal) error
	Delete(id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)

	// Step mutations run in a single transaction that locks the parent
	// goal row before rewriting its counters.
	CreateStep(step *GoalStep) error
	FindStepsByGoalID(goalID uuid.UUID) ([]GoalStep, error)
	FindStepByID(id uuid.UUID) (*GoalStep, error)
	UpdateStep(step *GoalStep, wasDone bool) error
	DeleteStep(step *GoalStep) (clamped bool, err error)
}

type gormGoalRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GoalRepository {
	return &gormGoalRepository{db: db}
}

func (r *gormGoalRepository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *gormGoalRepository) FindAllByUserID(userID uuid.UUID) ([]Goal, error) {
	var goals []Goal
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (r *gormGoalRepository) FindByID(id uuid.UUID) (*Goal, error) {
	var g Goal
	err := r.db.First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gormGoalRepository) Update(g *Goal) error {
	return r.db.Save(g).Error
}

func (r *gormGoalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Goal{}, "id = ?", id).Error
}

func (r *gormGoalRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Goal{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormGoalRepository) lockGoal(tx *gorm.DB, id uuid.UUID) (*Goal, error) {
	var g Goal
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gormGoalRepository) saveCounters(tx *gorm.DB, g *Goal) error {
	return tx.Model(&Goal{}).Where("id = ?", g.ID).Updates(map[string]interface{}{
		"total_steps":     g.TotalSteps,
		"completed_steps": g.CompletedSteps,
	}).Error
}

func (r *gormGoalRepository) CreateStep(step *GoalStep) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		g, err := r.lockGoal(tx, step.GoalID)
		if err != nil {
			return err
		}
		if err := tx.Create(step).Error; err != nil {
			return err
		}

		var steps []GoalStep
		if err := tx.Where("goal_id = ?", g.ID).Find(&steps).Error; err != nil {
			return err
		}
		SyncStepCounters(g, steps)
		return r.saveCounters(tx, g)
	})
}

func (r *gormGoalRepository) FindStepsByGoalID(goalID uuid.UUID) ([]GoalStep, error) {
	var steps []GoalStep
	err := r.db.
		Where("goal_id = ?", goalID).
		Order(stepOrdering).
		Find(&steps).Error
	return steps, err
}

func (r *gormGoalRepository) FindStepByID(id uuid.UUID) (*GoalStep, error) {
	var step GoalStep
	err := r.db.First(&step, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *gormGoalRepository) UpdateStep(step *GoalStep, wasDone bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		g, err := r.lockGoal(tx, step.GoalID)
		if err != nil {
			return err
		}
		if err := tx.Save(step).Error; err != nil {
			return err
		}

		if wasDone == step.IsDone {
			return nil
		}
		ApplyStepToggle(g, wasDone, step.IsDone)
		return r.saveCounters(tx, g)
	})
}

func (r *gormGoalRepository) DeleteStep(step *GoalStep) (bool, error) {
	var clamped bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		g, err := r.lockGoal(tx, step.GoalID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&GoalStep{}, "id = ?", step.ID).Error; err != nil {
			return err
		}

		clamped = ApplyStepDeleted(g, step.IsDone)
		return r.saveCounters(tx, g)
	})
	return clamped, err
}
