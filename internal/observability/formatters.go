// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:    %s\n", profile.Career))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", profile.Category))
	sb.WriteString(fmt.Sprintf("Budget:    %s   Timeline: %s\n",
		profile.Constraints.Budget, profile.Constraints.Timeline))
	sb.WriteString(fmt.Sprintf("Location:  %s   GPA: %.2f   AA: %v\n",
		profile.Constraints.Location, profile.Constraints.GPA, profile.Constraints.HasAA))

	if len(profile.Flags) > 0 {
		sb.WriteString("\nFlags:\n")
		for _, flag := range profile.Flags {
			sb.WriteString(fmt.Sprintf("  • %s\n", flag))
		}
	}
	if len(profile.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(profile.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := profile.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("STUDENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPathway outputs the researched pathway with ranked transfer options.
func (p *Printer) PrintPathway(result *types.PathwayResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if len(result.Programs) > 0 {
		sb.WriteString(fmt.Sprintf("Feeder:   %s (%s)\n\n",
			result.Programs[0].Name, result.Programs[0].Code))
	}

	sb.WriteString("Transfer options:\n")
	count := min(len(result.TransferOptions), maxItemsToShow)
	for i := 0; i < count; i++ {
		opt := result.TransferOptions[i]
		region := "out-of-region"
		if opt.InRegion {
			region = "in-region"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, opt.University))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", opt.Score, region))
	}
	if len(result.TransferOptions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.TransferOptions)-maxItemsToShow))
	}

	if certs := result.RequiredCertifications(); len(certs) > 0 {
		sb.WriteString("\nCertifications:\n")
		for _, c := range certs {
			sb.WriteString(fmt.Sprintf("  • %s\n", c.Name))
		}
	}
	if lics := result.RequiredLicenses(); len(lics) > 0 {
		sb.WriteString("\nLicenses:\n")
		for _, l := range lics {
			sb.WriteString(fmt.Sprintf("  • %s\n", l.Name))
		}
	}

	p.printBox("PATHWAY RESEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCosts outputs the three path cost breakdowns.
func (p *Printer) PrintCosts(result *types.CostResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, entry := range []struct {
		name string
		b    *types.CostBreakdown
	}{
		{"Cheapest", &result.Cheapest},
		{"Fastest", &result.Fastest},
		{"Prestige", &result.Prestige},
	} {
		sb.WriteString(fmt.Sprintf("%-9s %s\n", entry.name+":", entry.b.Institution))
		sb.WriteString(fmt.Sprintf("          total $%.0f", entry.b.Total))
		if entry.b.Accelerated {
			sb.WriteString(" (accelerated)")
		}
		sb.WriteString("\n")
		for _, w := range entry.b.Warnings {
			if len(w) > 48 {
				w = w[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("          ⚠ %s\n", w))
		}
	}

	p.printBox("COST ESTIMATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSalary outputs the salary outlook.
func (p *Printer) PrintSalary(result *types.SalaryResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Occupation:  %s (%s)\n", result.Occupation, result.SOCCode))
	sb.WriteString(fmt.Sprintf("Median:      $%.0f\n", result.MedianSalary))
	sb.WriteString(fmt.Sprintf("Regional:    $%.0f\n", result.RegionalSalary))
	sb.WriteString(fmt.Sprintf("Growth:      %s\n", result.GrowthRate))
	if math.IsInf(result.ROIYears, 1) {
		sb.WriteString("ROI:         never breaks even")
	} else {
		sb.WriteString(fmt.Sprintf("ROI:         %.1f years to break even", result.ROIYears))
	}

	p.printBox("SALARY OUTLOOK", sb.String())
}

// PrintRoadmap outputs a summary of the final roadmap.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:     %s\n", roadmap.Metadata.Career))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n\n", roadmap.Metadata.Confidence))

	for _, id := range []string{types.PathCheapest, types.PathFastest, types.PathPrestige} {
		path, ok := roadmap.Paths[id]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s\n", path.Name))
		sb.WriteString(fmt.Sprintf("  $%.0f over %s, %d steps, ROI %.1fy\n",
			path.TotalCost, path.Duration, len(path.Steps), path.ROIYears))
	}
	sb.WriteString(fmt.Sprintf("\nGraph: %d nodes, %d edges, %d citations",
		len(roadmap.Nodes), len(roadmap.Edges), len(roadmap.Citations)))

	p.printBox("ROADMAP", sb.String())
}
