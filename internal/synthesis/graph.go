package synthesis

import (
	"fmt"

	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Edge relationship labels.
const (
	edgeTransfer   = "Transfer Agreement"
	edgeGradSchool = "Graduate School"
	edgeDoctoral   = "Doctoral Research"
)

// Layout grid for the visualization graph. Coordinates only affect initial
// rendering.
const (
	columnX             = 250.0
	columnStride        = 300.0
	rowStride           = 150.0
	credentialRowStride = 100.0
)

// maxUniversityNodes caps how many transfer options appear in the graph.
const maxUniversityNodes = 3

// buildGraph mirrors the pathway as nodes and edges with layout coordinates.
// The feeder node links to each university node, and graduate stages chain
// off the first university when requested.
func buildGraph(profile *types.Profile, pathway *types.PathwayResult) ([]types.Node, []types.Edge) {
	var nodes []types.Node
	var edges []types.Edge
	y := 0.0

	addNode := func(kind string, data types.NodeData, pos types.Position) string {
		id := fmt.Sprintf("node-%d", len(nodes))
		nodes = append(nodes, types.Node{ID: id, Kind: kind, Data: data, Position: pos})
		return id
	}
	addEdge := func(source, target, label string) {
		edges = append(edges, types.Edge{
			ID:     fmt.Sprintf("edge-%d", len(edges)),
			Source: source,
			Target: target,
			Label:  label,
		})
	}

	var feederID string
	if len(pathway.Programs) > 0 {
		program := pathway.Programs[0]
		feederID = addNode(types.StepProgram, types.NodeData{
			Label:    fmt.Sprintf("%s: %s", seed.FeederInstitution, program.Name),
			Duration: "2 years",
			URL:      program.URL,
		}, types.Position{X: columnX, Y: y})
		y += rowStride
	}

	var firstUniversityID string
	for i, opt := range pathway.TransferOptions {
		if i >= maxUniversityNodes {
			break
		}
		id := addNode(types.StepProgram, types.NodeData{
			Label:    fmt.Sprintf("%s: %s", opt.University, opt.Program),
			Duration: "2 years",
			URL:      opt.URL,
		}, types.Position{X: columnX + float64(i)*columnStride, Y: y})
		if i == 0 {
			firstUniversityID = id
		}
		if feederID != "" {
			label := opt.Articulation
			if label == "" {
				label = edgeTransfer
			}
			addEdge(feederID, id, label)
		}
	}
	if len(pathway.TransferOptions) > 0 {
		y += rowStride
	}

	for _, cert := range pathway.RequiredCertifications() {
		id := addNode(types.StepCertification, types.NodeData{
			Label:    cert.Name,
			Cost:     certificationStepCost,
			Duration: cert.Timing,
			URL:      cert.URL,
		}, types.Position{X: columnX, Y: y})
		if firstUniversityID != "" {
			addEdge(firstUniversityID, id, "Qualifying Exam")
		}
		y += credentialRowStride
	}
	for _, lic := range pathway.RequiredLicenses() {
		id := addNode(types.StepLicense, types.NodeData{
			Label:    fmt.Sprintf("%s (%s)", lic.Name, lic.State),
			Cost:     licenseStepCost,
			Duration: lic.Timing,
			URL:      lic.URL,
		}, types.Position{X: columnX, Y: y})
		if firstUniversityID != "" {
			addEdge(firstUniversityID, id, "Professional License")
		}
		y += credentialRowStride
	}

	prevID := firstUniversityID
	if hasPreference(profile, "masters") && prevID != "" {
		id := addNode(types.StepMasters, types.NodeData{
			Label:    fmt.Sprintf("Master's in %s", profile.Career),
			Duration: "2 years",
		}, types.Position{X: columnX, Y: y})
		addEdge(prevID, id, edgeGradSchool)
		prevID = id
		y += rowStride
	}
	if hasPreference(profile, "phd") && prevID != "" {
		id := addNode(types.StepPhD, types.NodeData{
			Label:    fmt.Sprintf("Doctorate in %s", profile.Career),
			Duration: "4 years",
		}, types.Position{X: columnX, Y: y})
		addEdge(prevID, id, edgeDoctoral)
	}

	return nodes, edges
}
