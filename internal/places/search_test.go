package places

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []Place{
	{City: "Lisbon", Airport: "Humberto Delgado", Code: "LIS", Region: "Europe"},
	{City: "London", Airport: "Heathrow", Code: "LHR", Region: "Europe"},
	{City: "Los Angeles", Airport: "LAX International", Code: "LAX", Region: "North America"},
	{City: "Lima", Airport: "Jorge Chavez", Code: "LIM", Region: "South America"},
	{City: "Milan", Airport: "Malpensa", Code: "MXP", Region: "Europe"},
}

func TestSearch_ExactCodeFirst(t *testing.T) {
	// "LIM" is a code match for Lima but also a prefix of nothing and a
	// substring of "LAX International"? No — it must rank Lima first regardless
	// of where other tiers would place it.
	results := searchIn(testCatalog, "lim", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "LIM", results[0].Code, "exact code match ranks first, any case")

	upper := searchIn(testCatalog, "LIM", 10)
	require.NotEmpty(t, upper)
	assert.Equal(t, "LIM", upper[0].Code)
}

func TestSearch_PrefixBeforeSubstring(t *testing.T) {
	// "lo" prefixes London and Los Angeles; it is only a substring elsewhere.
	results := searchIn(testCatalog, "lo", 10)
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "LHR", results[0].Code, "catalog order within the prefix tier")
	assert.Equal(t, "LAX", results[1].Code)
}

func TestSearch_SubstringCoversAllFields(t *testing.T) {
	byAirport := searchIn(testCatalog, "heathrow", 10)
	require.Len(t, byAirport, 1)
	assert.Equal(t, "LHR", byAirport[0].Code)

	byRegion := searchIn(testCatalog, "south america", 10)
	require.Len(t, byRegion, 1)
	assert.Equal(t, "LIM", byRegion[0].Code)
}

func TestSearch_NoDuplicatesAcrossTiers(t *testing.T) {
	// "lis" is both the code LIS and a prefix of Lisbon.
	results := searchIn(testCatalog, "lis", 10)
	seen := map[string]int{}
	for _, p := range results {
		seen[p.Code]++
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "place %s appears more than once", code)
	}
	assert.Equal(t, "LIS", results[0].Code)
}

func TestSearch_EmptyAndWhitespaceQueries(t *testing.T) {
	assert.Empty(t, searchIn(testCatalog, "", 10))
	assert.Empty(t, searchIn(testCatalog, "   ", 10))
	assert.Empty(t, searchIn(testCatalog, "\t\n", 10))
}

func TestSearch_TrimsQueryBeforeMatching(t *testing.T) {
	results := searchIn(testCatalog, "  LIS  ", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "LIS", results[0].Code)
}

func TestSearch_LimitRespected(t *testing.T) {
	for limit := 0; limit <= len(testCatalog)+1; limit++ {
		results := searchIn(testCatalog, "l", limit)
		assert.LessOrEqual(t, len(results), limit)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, searchIn(testCatalog, "zanzibar", 10))
}

func TestSearch_FullCatalogCodesRankFirst(t *testing.T) {
	for _, p := range Catalog {
		results := Search(strings.ToLower(p.Code), 8)
		require.NotEmpty(t, results, "code %s", p.Code)
		assert.Equal(t, p.Code, results[0].Code, "code query must return its entity first")
	}
}

func TestCatalog_CodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog {
		assert.False(t, seen[p.Code], "duplicate code %s", p.Code)
		seen[p.Code] = true
	}
}

func TestPlace_DisplayValue(t *testing.T) {
	p := Place{City: "Tokyo", Code: "HND"}
	assert.Equal(t, "Tokyo (HND)", p.DisplayValue())
}
