// Package profiling converts validated quiz input into a structured student
// profile using LLM extraction, with a deterministic fallback when no model
// is available.
package profiling

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/prompts"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Flags raised by the profiling stage. Downstream stages branch on these.
const (
	FlagCommunityCollegeOptimal = "community_college_optimal"
	FlagBrightFuturesEligible   = "bright_futures_eligible"
	FlagWorkingStudent          = "working_student"
)

// brightFuturesMinGPA is the GPA threshold for the state scholarship flag.
const brightFuturesMinGPA = 3.5

// ExtractProfile builds a student profile from quiz input via the LLM. The
// constraint block is always overwritten with values derived directly from
// the quiz so that model output can never contradict what the student
// actually answered. Any LLM failure falls back to BuildProfile.
func ExtractProfile(ctx context.Context, client llm.Client, quiz *types.QuizInput) (*types.Profile, error) {
	if client == nil {
		return BuildProfile(quiz), nil
	}

	quizJSON, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return nil, &ParseError{Message: "failed to encode quiz input", Cause: err}
	}

	template := prompts.MustGet("profiling.json", "extract-profile")
	prompt := prompts.Format(template, map[string]string{
		"QuizJSON": string(quizJSON),
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		// Profiling degrades to the deterministic profile rather than
		// failing the whole run.
		return BuildProfile(quiz), nil
	}

	responseText = llm.CleanJSONBlock(responseText)

	var profile types.Profile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return BuildProfile(quiz), nil
	}

	applyQuizConstraints(&profile, quiz)

	if strings.TrimSpace(profile.Career) == "" {
		profile.Career = quiz.Career
	}
	if strings.TrimSpace(profile.Category) == "" {
		profile.Category = Categorize(quiz.Career)
	}
	ensureDeterministicFlags(&profile, quiz)

	return &profile, nil
}

// BuildProfile derives a profile from the quiz alone. It is used when no LLM
// client is configured and whenever LLM extraction fails.
func BuildProfile(quiz *types.QuizInput) *types.Profile {
	profile := &types.Profile{
		Career:      quiz.Career,
		Category:    Categorize(quiz.Career),
		Preferences: append([]string(nil), quiz.Goals...),
	}
	applyQuizConstraints(profile, quiz)
	ensureDeterministicFlags(profile, quiz)
	return profile
}

// applyQuizConstraints copies the quiz answers into the constraint block,
// discarding whatever the model produced for those fields.
func applyQuizConstraints(profile *types.Profile, quiz *types.QuizInput) {
	profile.Constraints = types.Constraints{
		Budget:       quiz.Budget,
		Timeline:     quiz.Timeline,
		GPA:          quiz.GPA,
		HasAA:        quiz.HasAssociate(),
		Location:     quiz.Location,
		WorkSchedule: quiz.WorkSchedule,
	}
}

// ensureDeterministicFlags adds the flags that follow directly from quiz
// answers if the model did not raise them itself.
func ensureDeterministicFlags(profile *types.Profile, quiz *types.QuizInput) {
	addFlag := func(flag string) {
		if !profile.HasFlag(flag) {
			profile.Flags = append(profile.Flags, flag)
		}
	}

	// Students without a degree on a constrained budget route through the
	// feeder college.
	if !quiz.HasAssociate() && quiz.Budget == "low" {
		addFlag(FlagCommunityCollegeOptimal)
	}
	if quiz.GPA >= brightFuturesMinGPA && quiz.Location != types.LocationAnywhere {
		addFlag(FlagBrightFuturesEligible)
	}
	if quiz.WorkSchedule == "part-time-student" {
		addFlag(FlagWorkingStudent)
	}
}

// Categorize maps a career name to its broad category.
func Categorize(career string) string {
	c := strings.ToLower(career)
	switch {
	case strings.Contains(c, "software") || strings.Contains(c, "data") ||
		strings.Contains(c, "computer") || strings.Contains(c, "programmer"):
		return "STEM-Technology"
	case strings.Contains(c, "engineer"):
		return "STEM-Engineering"
	case strings.Contains(c, "nurse") || strings.Contains(c, "physician") ||
		strings.Contains(c, "therapist") || strings.Contains(c, "pharmacist") ||
		strings.Contains(c, "dentist"):
		return "Healthcare"
	case strings.Contains(c, "architect"):
		return "STEM-Architecture"
	case strings.Contains(c, "accountant") || strings.Contains(c, "financial") ||
		strings.Contains(c, "analyst") || strings.Contains(c, "business"):
		return "Business"
	default:
		return "General"
	}
}
