// Package types provides type definitions for structured data passed between
// pipeline stages of the roadmap agent.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Education level values accepted in quiz input.
const (
	EducationHighSchool  = "hs"
	EducationSomeCollege = "some_college"
	EducationAssociate   = "aa"
	EducationBachelor    = "ba"
)

// Location preference values accepted in quiz input.
const (
	LocationLocal    = "miami"
	LocationInRegion = "florida"
	LocationAnywhere = "anywhere"
)

// QuizInput represents the validated quiz payload that starts a roadmap run.
type QuizInput struct {
	Career             string   `json:"career" validate:"required,min=1"`
	CurrentEducation   string   `json:"current_education" validate:"required,oneof=hs some_college aa ba"`
	GPA                float64  `json:"gpa" validate:"gte=0,lte=4"`
	Budget             string   `json:"budget" validate:"required,oneof=low medium high"`
	Timeline           string   `json:"timeline" validate:"required,oneof=fast normal flexible"`
	Location           string   `json:"location" validate:"required,oneof=miami florida anywhere"`
	Goals              []string `json:"goals,omitempty"`
	HasTransferCredits bool     `json:"has_transfer_credits,omitempty"`
	VeteranStatus      bool     `json:"veteran_status,omitempty"`
	WorkSchedule       string   `json:"work_schedule,omitempty" validate:"omitempty,oneof=full-time-student part-time-student"`
}

// Validate checks the quiz input using struct validation rules. A quiz that
// fails here is rejected before any pipeline stage runs.
func (q *QuizInput) Validate() error {
	q.Career = strings.TrimSpace(q.Career)
	if q.WorkSchedule == "" {
		q.WorkSchedule = "full-time-student"
	}
	validate := validator.New()
	return validate.Struct(q)
}

// HasGoal reports whether a goal (e.g. "masters", "internship") was requested.
func (q *QuizInput) HasGoal(goal string) bool {
	for _, g := range q.Goals {
		if strings.EqualFold(strings.TrimSpace(g), goal) {
			return true
		}
	}
	return false
}

// HasAssociate reports whether the student already holds an associate degree
// (or higher), which removes the feeder-college years from cost formulas.
func (q *QuizInput) HasAssociate() bool {
	return q.CurrentEducation == EducationAssociate || q.CurrentEducation == EducationBachelor
}
