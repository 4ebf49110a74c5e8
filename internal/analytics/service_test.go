package analytics

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/goal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct {
	count int64
}

func (f fixedCounter) CountByUserID(userID uuid.UUID) (int64, error) {
	return f.count, nil
}

type stubGoalService struct {
	goal.GoalService
	goals []goal.GoalResponse
}

func (s stubGoalService) List(ctx context.Context, userID uuid.UUID) ([]goal.GoalResponse, error) {
	return s.goals, nil
}

func TestSummary(t *testing.T) {
	goals := []goal.GoalResponse{
		{Title: "Done", Achieved: true},
		{Title: "Also done", Achieved: true},
		{Title: "Still open", Achieved: false},
	}
	svc := NewService(fixedCounter{count: 4}, fixedCounter{count: 7}, stubGoalService{goals: goals})

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.CertificatesCount)
	assert.Equal(t, int64(7), summary.ProjectsCount)
	assert.Equal(t, int64(3), summary.GoalsCount)
	assert.Equal(t, int64(2), summary.GoalsCompletedCount)
	assert.Equal(t, int64(1), summary.GoalsInProgressCount)
	assert.Equal(t, 66.7, summary.GoalsCompletionRatePercent)
}

func TestSummaryNoGoals(t *testing.T) {
	svc := NewService(fixedCounter{}, fixedCounter{}, stubGoalService{})

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.GoalsCount)
	assert.Equal(t, float64(0), summary.GoalsCompletionRatePercent, "no goals means a zero rate, not a division by zero")
}

func TestGoalsProgressDelegates(t *testing.T) {
	goals := []goal.GoalResponse{{Title: "One"}, {Title: "Two"}}
	svc := NewService(fixedCounter{}, fixedCounter{}, stubGoalService{goals: goals})

	got, err := svc.GoalsProgress(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, goals, got)
}
