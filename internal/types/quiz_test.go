package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuiz() QuizInput {
	return QuizInput{
		Career:           "registered nurse",
		CurrentEducation: "hs",
		GPA:              3.4,
		Budget:           "low",
		Timeline:         "normal",
		Location:         "miami",
	}
}

func TestQuizInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuizInput)
		wantErr bool
	}{
		{name: "valid quiz", mutate: func(*QuizInput) {}},
		{name: "missing career", mutate: func(q *QuizInput) { q.Career = "" }, wantErr: true},
		{name: "whitespace career", mutate: func(q *QuizInput) { q.Career = "   " }, wantErr: true},
		{name: "bad education", mutate: func(q *QuizInput) { q.CurrentEducation = "phd" }, wantErr: true},
		{name: "gpa above scale", mutate: func(q *QuizInput) { q.GPA = 4.5 }, wantErr: true},
		{name: "negative gpa", mutate: func(q *QuizInput) { q.GPA = -1 }, wantErr: true},
		{name: "bad budget", mutate: func(q *QuizInput) { q.Budget = "unlimited" }, wantErr: true},
		{name: "bad timeline", mutate: func(q *QuizInput) { q.Timeline = "yesterday" }, wantErr: true},
		{name: "bad location", mutate: func(q *QuizInput) { q.Location = "mars" }, wantErr: true},
		{name: "bad work schedule", mutate: func(q *QuizInput) { q.WorkSchedule = "weekends" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := validQuiz()
			tt.mutate(&quiz)
			err := quiz.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizInput_ValidateDefaultsWorkSchedule(t *testing.T) {
	quiz := validQuiz()
	require.NoError(t, quiz.Validate())
	assert.Equal(t, "full-time-student", quiz.WorkSchedule)
}

func TestQuizInput_HasGoal(t *testing.T) {
	quiz := validQuiz()
	quiz.Goals = []string{"Masters", " internship "}

	assert.True(t, quiz.HasGoal("masters"))
	assert.True(t, quiz.HasGoal("internship"))
	assert.False(t, quiz.HasGoal("phd"))
}

func TestQuizInput_HasAssociate(t *testing.T) {
	quiz := validQuiz()
	assert.False(t, quiz.HasAssociate())

	quiz.CurrentEducation = EducationAssociate
	assert.True(t, quiz.HasAssociate())

	quiz.CurrentEducation = EducationBachelor
	assert.True(t, quiz.HasAssociate())
}
