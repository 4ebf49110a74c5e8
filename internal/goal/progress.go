package goal

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTargetProjectsInvalid = errors.New("target_projects must be positive")
	ErrStepCountersInvalid   = errors.New("completed steps exceed total steps")
)

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SyncStepCounters recounts both counters from the full step list.
// Used on step creation, where a recount is as cheap as a delta.
func SyncStepCounters(g *Goal, steps []GoalStep) {
	completed := 0
	for i := range steps {
		if steps[i].IsDone {
			completed++
		}
	}
	g.TotalSteps = len(steps)
	g.CompletedSteps = completed
}

// ApplyStepToggle adjusts completed_steps by the is_done transition.
// A no-op when the flag did not change.
func ApplyStepToggle(g *Goal, wasDone, isDone bool) {
	switch {
	case !wasDone && isDone:
		g.CompletedSteps++
	case wasDone && !isDone:
		g.CompletedSteps--
	}
}

// ApplyStepDeleted decrements the counters for a removed step. Counters
// never go below zero and completed never exceeds total; the returned
// flag reports whether any clamping was applied, so callers can log the
// drift instead of failing the delete.
func ApplyStepDeleted(g *Goal, wasDone bool) (clamped bool) {
	if g.TotalSteps > 0 {
		g.TotalSteps--
	} else {
		clamped = true
	}
	if wasDone {
		if g.CompletedSteps > 0 {
			g.CompletedSteps--
		} else {
			clamped = true
		}
	}
	if g.CompletedSteps > g.TotalSteps {
		g.CompletedSteps = g.TotalSteps
		clamped = true
	}
	return clamped
}

// ComputeProjectProgress returns the percentage of the project target
// reached, rounded to one decimal and capped at 100.
func ComputeProjectProgress(g *Goal, completedProjects int64) (float64, error) {
	if g.TargetProjects <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrTargetProjectsInvalid, g.TargetProjects)
	}
	pct := round1(100 * float64(completedProjects) / float64(g.TargetProjects))
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

// ComputeStepsProgress returns the percentage of steps done, rounded to
// one decimal. A goal with no steps reports 0.
func ComputeStepsProgress(g *Goal) (float64, error) {
	if g.CompletedSteps < 0 || g.CompletedSteps > g.TotalSteps {
		return 0, fmt.Errorf("%w: %d/%d", ErrStepCountersInvalid, g.CompletedSteps, g.TotalSteps)
	}
	if g.TotalSteps == 0 {
		return 0, nil
	}
	return round1(100 * float64(g.CompletedSteps) / float64(g.TotalSteps)), nil
}

// IsAchieved reports whether a goal counts as completed: the project
// target is met and every tracked step is done.
func IsAchieved(g *Goal, completedProjects int64) bool {
	if int64(g.TargetProjects) > completedProjects {
		return false
	}
	return g.TotalSteps == 0 || g.CompletedSteps >= g.TotalSteps
}
