package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalInstitution(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fiu", "Florida International University"},
		{"FIU", "Florida International University"},
		{"  uf  ", "University of Florida"},
		{"georgia tech", "Georgia Institute of Technology"},
		{"Berkeley", "University of California Berkeley"},
		{"Florida State University", "Florida State University"},
		{"Acme School of Welding", "Acme School of Welding"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalInstitution(tt.in), tt.in)
	}
}

func TestLookupInstitution(t *testing.T) {
	tables := MustLoad()

	rec, ok := tables.LookupInstitution("fiu")
	require.True(t, ok)
	assert.Equal(t, "Miami", rec.City)
	assert.Equal(t, 6565.0, rec.InStateTuition)

	rec, ok = tables.LookupInstitution("Florida International")
	require.True(t, ok, "substring match resolves partial names")
	assert.Equal(t, "Miami", rec.City)

	_, ok = tables.LookupInstitution("Hogwarts")
	assert.False(t, ok)
}

func TestLookupInstitution_FeederFlag(t *testing.T) {
	tables := MustLoad()

	rec, ok := tables.LookupInstitution(FeederInstitution)
	require.True(t, ok)
	assert.True(t, rec.Feeder)
}

func TestInstitutionScore(t *testing.T) {
	tables := MustLoad()

	fiu, ok := tables.LookupInstitution("fiu")
	require.True(t, ok)
	mit, ok := tables.LookupInstitution("mit")
	require.True(t, ok)

	assert.Equal(t, 276, fiu.Score())
	assert.Equal(t, 598, mit.Score())
	assert.Greater(t, mit.Score(), fiu.Score())
}

func TestLookupHousing(t *testing.T) {
	tables := MustLoad()

	rec, matched := tables.LookupHousing("Miami")
	require.True(t, matched)
	assert.Equal(t, 950.0, rec.SharedRent)
	assert.Equal(t, 1470.0, rec.Monthly())

	rec, matched = tables.LookupHousing("gainesville")
	require.True(t, matched, "match is case-insensitive")
	assert.Equal(t, 650.0, rec.SharedRent)
}

func TestLookupHousing_BaselineFallback(t *testing.T) {
	tables := MustLoad()

	rec, matched := tables.LookupHousing("Ulaanbaatar")
	assert.False(t, matched)
	assert.Equal(t, tables.Housing[BaselineMetro], rec)
}

func TestLookupPathway(t *testing.T) {
	tables := MustLoad()

	row, ok := tables.LookupPathway("civil engineer")
	require.True(t, ok)
	assert.NotEmpty(t, row.Programs)
	assert.NotEmpty(t, row.TransferPartners)

	_, ok = tables.LookupPathway("medieval falconer")
	assert.False(t, ok)
}

func TestLookupPathway_AmbiguousMatchIsStable(t *testing.T) {
	tables := MustLoad()

	// "Engineer" matches the mechanical, electrical, and civil rows; the
	// fuzzy pass must resolve the same row on every call.
	first, ok := tables.LookupPathway("Engineer")
	require.True(t, ok)
	assert.Equal(t, "University of South Florida", first.TransferPartners[1].University)

	for i := 0; i < 50; i++ {
		row, ok := tables.LookupPathway("Engineer")
		require.True(t, ok)
		assert.Equal(t, first, row, "call %d", i)
	}
}

func TestLookupOccupationCode(t *testing.T) {
	tables := MustLoad()

	code, ok := tables.LookupOccupationCode("Registered Nurse")
	require.True(t, ok)
	assert.Equal(t, "29-1141", code)

	code, ok = tables.LookupOccupationCode("senior software engineer")
	require.True(t, ok, "substring match resolves title variations")
	assert.Equal(t, "15-1252", code)

	code, ok = tables.LookupOccupationCode("Engineer")
	require.True(t, ok)
	assert.Equal(t, "17-2051", code, "ambiguous titles resolve in key order")

	_, ok = tables.LookupOccupationCode("medieval falconer")
	assert.False(t, ok)
}

func TestLookupSalary(t *testing.T) {
	tables := MustLoad()

	code, ok := tables.LookupOccupationCode("registered nurse")
	require.True(t, ok)

	rec, ok := tables.LookupSalary(code)
	require.True(t, ok)
	assert.Greater(t, rec.Median, 0.0)
	assert.NotEmpty(t, rec.Outlook)

	_, ok = tables.LookupSalary("00-0000")
	assert.False(t, ok)
}
