package observability

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.Profile{
		Career:   "Civil Engineer",
		Category: "STEM-Engineering",
		Constraints: types.Constraints{
			Budget:   "medium",
			Timeline: "normal",
			GPA:      3.4,
			Location: "miami",
		},
		Flags: []string{"bright_futures_eligible"},
	})

	out := buf.String()
	assert.Contains(t, out, "STUDENT PROFILE")
	assert.Contains(t, out, "Civil Engineer")
	assert.Contains(t, out, "bright_futures_eligible")
}

func TestPrintPathway_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.PathwayResult{}
	for i := 0; i < 8; i++ {
		result.TransferOptions = append(result.TransferOptions, types.TransferOption{
			University: "University " + strings.Repeat("X", i+1),
		})
	}
	p.PrintPathway(result)

	out := buf.String()
	assert.Contains(t, out, "... and 3 more")
}

func TestPrintSalary_InfiniteROI(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSalary(&types.SalaryResult{
		Occupation:   "Unknown",
		MedianSalary: 0,
		ROIYears:     math.Inf(1),
	})

	assert.Contains(t, buf.String(), "never breaks even")
}

func TestPrinters_NilInputsAreNoOps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)
	p.PrintPathway(nil)
	p.PrintCosts(nil)
	p.PrintSalary(nil)
	p.PrintRoadmap(nil)

	assert.Empty(t, buf.String())
}
