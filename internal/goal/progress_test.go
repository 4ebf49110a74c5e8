package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStepCounters(t *testing.T) {
	g := &Goal{}

	SyncStepCounters(g, []GoalStep{
		{IsDone: true},
		{IsDone: false},
		{IsDone: true},
		{IsDone: false},
	})
	assert.Equal(t, 4, g.TotalSteps)
	assert.Equal(t, 2, g.CompletedSteps)

	SyncStepCounters(g, nil)
	assert.Equal(t, 0, g.TotalSteps)
	assert.Equal(t, 0, g.CompletedSteps)
}

func TestApplyStepToggle(t *testing.T) {
	g := &Goal{TotalSteps: 3, CompletedSteps: 1}

	ApplyStepToggle(g, false, true)
	assert.Equal(t, 2, g.CompletedSteps)

	ApplyStepToggle(g, true, false)
	assert.Equal(t, 1, g.CompletedSteps)

	// Unchanged flag must not move the counter.
	ApplyStepToggle(g, true, true)
	ApplyStepToggle(g, false, false)
	assert.Equal(t, 1, g.CompletedSteps)
	assert.Equal(t, 3, g.TotalSteps, "toggle never touches total_steps")
}

func TestApplyStepDeleted(t *testing.T) {
	t.Run("DoneStep", func(t *testing.T) {
		g := &Goal{TotalSteps: 3, CompletedSteps: 2}
		clamped := ApplyStepDeleted(g, true)
		assert.False(t, clamped)
		assert.Equal(t, 2, g.TotalSteps)
		assert.Equal(t, 1, g.CompletedSteps)
	})

	t.Run("PendingStep", func(t *testing.T) {
		g := &Goal{TotalSteps: 3, CompletedSteps: 2}
		clamped := ApplyStepDeleted(g, false)
		assert.False(t, clamped)
		assert.Equal(t, 2, g.TotalSteps)
		assert.Equal(t, 2, g.CompletedSteps)
	})

	t.Run("ClampsAtZero", func(t *testing.T) {
		g := &Goal{TotalSteps: 0, CompletedSteps: 0}
		clamped := ApplyStepDeleted(g, true)
		assert.True(t, clamped)
		assert.Equal(t, 0, g.TotalSteps)
		assert.Equal(t, 0, g.CompletedSteps)
	})

	t.Run("ClampsCompletedToTotal", func(t *testing.T) {
		g := &Goal{TotalSteps: 1, CompletedSteps: 1}
		clamped := ApplyStepDeleted(g, false)
		assert.True(t, clamped)
		assert.Equal(t, 0, g.TotalSteps)
		assert.Equal(t, 0, g.CompletedSteps)
	})
}

func TestComputeProjectProgress(t *testing.T) {
	cases := []struct {
		name      string
		target    int
		completed int64
		want      float64
	}{
		{"OneOfFive", 5, 1, 20.0},
		{"ThreeOfFive", 5, 3, 60.0},
		{"OverTargetIsCapped", 5, 6, 100.0},
		{"ExactTarget", 4, 4, 100.0},
		{"RoundsToOneDecimal", 3, 1, 33.3},
		{"RoundsHalfUp", 3, 2, 66.7},
		{"Zero", 5, 0, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Goal{TargetProjects: tc.target}
			got, err := ComputeProjectProgress(g, tc.completed)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("InvalidTarget", func(t *testing.T) {
		_, err := ComputeProjectProgress(&Goal{TargetProjects: 0}, 1)
		assert.ErrorIs(t, err, ErrTargetProjectsInvalid)

		_, err = ComputeProjectProgress(&Goal{TargetProjects: -2}, 1)
		assert.ErrorIs(t, err, ErrTargetProjectsInvalid)
	})
}

func TestComputeStepsProgress(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		want      float64
	}{
		{"TwoOfFour", 4, 2, 50.0},
		{"AllDone", 3, 3, 100.0},
		{"NoneDone", 3, 0, 0.0},
		{"NoSteps", 0, 0, 0.0},
		{"RoundsToOneDecimal", 3, 1, 33.3},
		{"RoundsHalfUp", 7, 5, 71.4},
		{"TiesRoundAwayFromZero", 16, 1, 6.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Goal{TotalSteps: tc.total, CompletedSteps: tc.completed}
			got, err := ComputeStepsProgress(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("CompletedAboveTotal", func(t *testing.T) {
		_, err := ComputeStepsProgress(&Goal{TotalSteps: 2, CompletedSteps: 3})
		assert.ErrorIs(t, err, ErrStepCountersInvalid)
	})

	t.Run("NegativeCompleted", func(t *testing.T) {
		_, err := ComputeStepsProgress(&Goal{TotalSteps: 2, CompletedSteps: -1})
		assert.ErrorIs(t, err, ErrStepCountersInvalid)
	})
}

func TestIsAchieved(t *testing.T) {
	cases := []struct {
		name              string
		goal              Goal
		completedProjects int64
		want              bool
	}{
		{"TargetMetNoSteps", Goal{TargetProjects: 2}, 2, true},
		{"TargetMetStepsDone", Goal{TargetProjects: 2, TotalSteps: 3, CompletedSteps: 3}, 2, true},
		{"TargetMetStepsPending", Goal{TargetProjects: 2, TotalSteps: 3, CompletedSteps: 2}, 2, false},
		{"TargetNotMet", Goal{TargetProjects: 2, TotalSteps: 3, CompletedSteps: 3}, 1, false},
		{"OverTarget", Goal{TargetProjects: 2}, 5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAchieved(&tc.goal, tc.completedProjects))
		})
	}
}
