package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProject() *Project {
	return &Project{
		Title:           "Portfolio Dashboard",
		Status:          StatusCompleted,
		WorkType:        WorkTeam,
		DurationText:    "2 weeks",
		PrimaryGoal:     GoalDeliverFeature,
		ProblemSolved:   "Visualize certificate progress in one place.",
		ToolsUsed:       "React, Django, DRF",
		SkillsUsed:      "React, Zustand, Tailwind",
		OutcomeShort:    "Shipped a responsive dashboard showing live stats.",
		SkillsToImprove: "Test coverage and CI",
	}
}

func TestComposeFullParagraph(t *testing.T) {
	got, err := Compose(fullProject())
	require.NoError(t, err)

	want := "Portfolio Dashboard was a team project completed in 2 weeks. " +
		"The main goal was to deliver a functional feature. " +
		"It addressed: Visualize certificate progress in one place. " +
		"Key tools/skills: React, Django, DRF, React, Zustand, Tailwind. " +
		"Outcome: Shipped a responsive dashboard showing live stats. " +
		"Next, I plan to improve: Test coverage and CI."
	assert.Equal(t, want, got)
}

func TestComposeIsDeterministic(t *testing.T) {
	first, err := Compose(fullProject())
	require.NoError(t, err)
	second, err := Compose(fullProject())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeStatusVerbs(t *testing.T) {
	cases := []struct {
		status ProjectStatus
		want   string
	}{
		{StatusCompleted, "Portfolio Dashboard was a team project completed in 2 weeks."},
		{StatusInProgress, "Portfolio Dashboard was a team project in progress in 2 weeks."},
		{StatusPlanned, "Portfolio Dashboard was a team project planned in 2 weeks."},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			p := fullProject()
			p.Status = tc.status
			got, err := Compose(p)
			require.NoError(t, err)
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestComposeFallbacks(t *testing.T) {
	p := &Project{
		Title:        "Tiny CLI",
		Status:       StatusCompleted,
		WorkType:     WorkIndividual,
		DurationText: "a weekend",
		PrimaryGoal:  GoalPracticeSkill,
	}

	got, err := Compose(p)
	require.NoError(t, err)

	want := "Tiny CLI was a individual project completed in a weekend. " +
		"The main goal was to practice and strengthen key skills. " +
		"It addressed: N/A. " +
		"Key tools/skills: N/A. " +
		"Outcome: N/A. " +
		"Next, I plan to improve: N/A."
	assert.Equal(t, want, got)
}

func TestComposeToolsAndSkillsJoin(t *testing.T) {
	p := fullProject()

	p.ToolsUsed = ""
	got, err := Compose(p)
	require.NoError(t, err)
	assert.Contains(t, got, "Key tools/skills: React, Zustand, Tailwind.")

	p.ToolsUsed = "Go"
	p.SkillsUsed = ""
	got, err = Compose(p)
	require.NoError(t, err)
	assert.Contains(t, got, "Key tools/skills: Go.")
}

func TestComposeDegradedOpening(t *testing.T) {
	t.Run("NoDuration", func(t *testing.T) {
		p := fullProject()
		p.DurationText = "  "
		got, err := Compose(p)
		require.NoError(t, err)
		assert.Contains(t, got, "Portfolio Dashboard was a team project completed.")
	})

	t.Run("NoGuidedOpeningFields", func(t *testing.T) {
		p := &Project{Title: "Notes App", Status: StatusPlanned}
		got, err := Compose(p)
		require.NoError(t, err)

		want := "Notes App was a project planned. " +
			"It addressed: N/A. " +
			"Key tools/skills: N/A. " +
			"Outcome: N/A. " +
			"Next, I plan to improve: N/A."
		assert.Equal(t, want, got)
	})

	t.Run("BlankStatusDefaultsToPlanned", func(t *testing.T) {
		p := &Project{Title: "Notes App"}
		got, err := Compose(p)
		require.NoError(t, err)
		assert.Contains(t, got, "Notes App was a project planned.")
	})
}

func TestComposeUnknownEnumsFail(t *testing.T) {
	t.Run("PrimaryGoal", func(t *testing.T) {
		p := fullProject()
		p.PrimaryGoal = "conquer_the_world"
		_, err := Compose(p)
		assert.ErrorIs(t, err, ErrUnknownPrimaryGoal)
	})

	t.Run("WorkType", func(t *testing.T) {
		p := fullProject()
		p.WorkType = "crowd"
		_, err := Compose(p)
		assert.ErrorIs(t, err, ErrUnknownWorkType)
	})

	t.Run("Status", func(t *testing.T) {
		p := fullProject()
		p.Status = "abandoned"
		_, err := Compose(p)
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestComposeNoDoublePunctuation(t *testing.T) {
	p := fullProject()
	got, err := Compose(p)
	require.NoError(t, err)
	assert.NotContains(t, got, "..")
}
