package project

type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "planned"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

var AllStatuses = []ProjectStatus{
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
}

func (s ProjectStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type WorkType string

const (
	WorkIndividual WorkType = "individual"
	WorkTeam       WorkType = "team"
)

func (w WorkType) IsValid() bool {
	return w == WorkIndividual || w == WorkTeam
}

type PrimaryGoal string

const (
	GoalPracticeSkill  PrimaryGoal = "practice_skill"
	GoalDeliverFeature PrimaryGoal = "deliver_feature"
	GoalBuildDemo      PrimaryGoal = "build_demo"
	GoalSolveProblem   PrimaryGoal = "solve_problem"
)

// primaryGoalPhrases maps each goal intent to the phrase used in composed
// descriptions. Every PrimaryGoal member must have an entry.
var primaryGoalPhrases = map[PrimaryGoal]string{
	GoalPracticeSkill:  "practice and strengthen key skills",
	GoalDeliverFeature: "deliver a functional feature",
	GoalBuildDemo:      "build a demonstrable prototype",
	GoalSolveProblem:   "solve a specific problem",
}

func (g PrimaryGoal) IsValid() bool {
	_, ok := primaryGoalPhrases[g]
	return ok
}
