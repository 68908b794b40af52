package types

// Step kinds used in path step chains and graph nodes.
const (
	StepProgram       = "program"
	StepCertification = "certification"
	StepLicense       = "license"
	StepInternship    = "internship"
	StepResearch      = "research"
	StepMasters       = "masters"
	StepPhD           = "phd"
)

// Step is a single node in a path's linear prerequisite chain. Every step
// except the first declares exactly one prerequisite: the preceding step's id.
type Step struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind"`
	Institution   string   `json:"institution"`
	Duration      string   `json:"duration"`
	Cost          float64  `json:"cost"`
	Prerequisites []string `json:"prerequisites"`
	Description   string   `json:"description"`
	URL           string   `json:"url,omitempty"`
}

// Path is one of the three named educational paths in a roadmap.
type Path struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalCost float64 `json:"total_cost"`
	Duration  string  `json:"duration"`
	Steps     []Step  `json:"steps"`
	ROIYears  float64 `json:"roi_years"`
}

// Position carries layout coordinates for graph visualization. The values
// have no semantic meaning.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the display payload attached to a graph node.
type NodeData struct {
	Label    string  `json:"label"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
	URL      string  `json:"url,omitempty"`
}

// Node is a visualization graph node mirroring a roadmap step.
type Node struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
}

// Edge connects two graph nodes with a human-readable relationship label.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// SalaryOutlook is the salary snapshot embedded in roadmap metadata.
type SalaryOutlook struct {
	MedianSalary float64 `json:"median_salary"`
	GrowthRate   string  `json:"growth_rate"`
	Outlook      string  `json:"outlook"`
}

// Metadata describes how and when a roadmap was generated.
type Metadata struct {
	GeneratedAt   string        `json:"generated_at"`
	Confidence    float64       `json:"confidence"`
	Career        string        `json:"career"`
	Category      string        `json:"category"`
	SalaryOutlook SalaryOutlook `json:"salary_outlook"`
}

// Roadmap is the complete response for a plan request. It is created fresh
// per request and never mutated after being returned.
type Roadmap struct {
	Paths     map[string]Path `json:"paths"`
	Nodes     []Node          `json:"nodes"`
	Edges     []Edge          `json:"edges"`
	Citations []Citation      `json:"citations"`
	Metadata  Metadata        `json:"metadata"`
}
