package project

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus      = errors.New("unknown project status")
	ErrUnknownWorkType    = errors.New("unknown work type")
	ErrUnknownPrimaryGoal = errors.New("unknown primary goal")
)

const fallback = "N/A"

// Compose builds a description paragraph from the project's guided
// answers. It is pure: the same project fields always yield the same
// string. Callers invoke it only when the user supplied no description
// of their own.
//
// The paragraph follows a fixed sentence order: opening (title, role,
// status verb, duration), main goal, problem addressed, tools/skills,
// outcome, and what to improve next. Optional fields fall back to "N/A";
// a blank duration drops the "in ..." clause, and when work type,
// duration and primary goal are all blank the opening degrades to
// "{title} was a project {verb}.".
func Compose(p *Project) (string, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "This project"
	}

	status := p.Status
	if status == "" {
		status = StatusPlanned
	}
	verb, err := statusVerb(status)
	if err != nil {
		return "", err
	}

	role := "individual"
	switch p.WorkType {
	case "", WorkIndividual:
	case WorkTeam:
		role = "team"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkType, p.WorkType)
	}

	dur := strings.TrimSpace(p.DurationText)

	goalPhrase := ""
	if p.PrimaryGoal != "" {
		phrase, ok := primaryGoalPhrases[p.PrimaryGoal]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPrimaryGoal, p.PrimaryGoal)
		}
		goalPhrase = phrase
	}

	var sentences []string

	switch {
	case p.WorkType == "" && dur == "" && goalPhrase == "":
		sentences = append(sentences, fmt.Sprintf("%s was a project %s.", title, verb))
	case dur != "":
		sentences = append(sentences, fmt.Sprintf("%s was a %s project %s in %s.", title, role, verb, dur))
	default:
		sentences = append(sentences, fmt.Sprintf("%s was a %s project %s.", title, role, verb))
	}

	if goalPhrase != "" {
		sentences = append(sentences, fmt.Sprintf("The main goal was to %s.", goalPhrase))
	}

	sentences = append(sentences, closeSentence("It addressed: "+orFallback(p.ProblemSolved)))
	sentences = append(sentences, closeSentence("Key tools/skills: "+toolsAndSkills(p.ToolsUsed, p.SkillsUsed)))
	sentences = append(sentences, closeSentence("Outcome: "+orFallback(p.OutcomeShort)))
	sentences = append(sentences, closeSentence("Next, I plan to improve: "+orFallback(p.SkillsToImprove)))

	return strings.Join(sentences, " "), nil
}

func statusVerb(s ProjectStatus) (string, error) {
	switch s {
	case StatusCompleted:
		return "completed", nil
	case StatusInProgress:
		return "in progress", nil
	case StatusPlanned:
		return "planned", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func orFallback(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func toolsAndSkills(tools, skills string) string {
	var parts []string
	if t := strings.TrimSpace(tools); t != "" {
		parts = append(parts, t)
	}
	if s := strings.TrimSpace(skills); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// closeSentence appends a period unless the fragment already ends with
// terminal punctuation, so user-supplied sentences do not double up.
func closeSentence(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
