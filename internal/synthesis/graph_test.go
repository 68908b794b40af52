package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

func TestBuildGraph_FeederLinksToUniversities(t *testing.T) {
	in := engineerInput()
	nodes, edges := buildGraph(in.Profile, in.Pathway)

	// Feeder, two universities, one certification, one license.
	require.Len(t, nodes, 5)

	// Feeder to each university, university to each credential.
	require.Len(t, edges, 4)
	assert.Equal(t, "2+2 agreement", edges[0].Label)
	assert.Equal(t, edgeTransfer, edges[1].Label) // UF option has no articulation
	assert.Equal(t, "Qualifying Exam", edges[2].Label)
	assert.Equal(t, "Professional License", edges[3].Label)

	// Every edge references existing nodes.
	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = true
	}
	for _, e := range edges {
		assert.True(t, ids[e.Source], "edge %s has unknown source", e.ID)
		assert.True(t, ids[e.Target], "edge %s has unknown target", e.ID)
	}
}

func TestBuildGraph_CapsUniversityNodes(t *testing.T) {
	in := engineerInput()
	in.Pathway.TransferOptions = []types.TransferOption{
		{University: "A"}, {University: "B"}, {University: "C"}, {University: "D"}, {University: "E"},
	}

	nodes, _ := buildGraph(in.Profile, in.Pathway)

	universities := 0
	for _, n := range nodes {
		if n.Kind == types.StepProgram && n.ID != "node-0" {
			universities++
		}
	}
	assert.Equal(t, maxUniversityNodes, universities)
}

func TestBuildGraph_GraduateChain(t *testing.T) {
	in := engineerInput()
	in.Profile.Preferences = []string{"masters", "phd"}

	nodes, edges := buildGraph(in.Profile, in.Pathway)

	var mastersID, phdID string
	for _, n := range nodes {
		switch n.Kind {
		case types.StepMasters:
			mastersID = n.ID
		case types.StepPhD:
			phdID = n.ID
		}
	}
	require.NotEmpty(t, mastersID)
	require.NotEmpty(t, phdID)

	var gradEdge, doctoralEdge *types.Edge
	for i := range edges {
		switch edges[i].Label {
		case edgeGradSchool:
			gradEdge = &edges[i]
		case edgeDoctoral:
			doctoralEdge = &edges[i]
		}
	}
	require.NotNil(t, gradEdge)
	require.NotNil(t, doctoralEdge)

	// Master's hangs off the first university, the doctorate off the
	// master's.
	assert.Equal(t, mastersID, gradEdge.Target)
	assert.Equal(t, mastersID, doctoralEdge.Source)
	assert.Equal(t, phdID, doctoralEdge.Target)
}

func TestBuildGraph_EmptyPathway(t *testing.T) {
	profile := &types.Profile{Career: "historian"}
	nodes, edges := buildGraph(profile, &types.PathwayResult{})
	assert.Empty(t, nodes)
	assert.Empty(t, edges)
}
