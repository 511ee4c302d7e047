package places

import "strings"

// Search performs ranked free-text lookup over the catalog.
//
// Matching is case-insensitive across three disjoint tiers, each preserving
// catalog order:
//  1. exact code match
//  2. city-name prefix match
//  3. substring match anywhere in city, airport, code, or region
//
// The tiers are concatenated in that order, deduped, and truncated to limit.
// An empty or whitespace-only query returns nothing. Linear in catalog size.
func Search(query string, limit int) []Place {
	return searchIn(Catalog, query, limit)
}

func searchIn(catalog []Place, query string, limit int) []Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	selected := make(map[string]bool, limit)
	var results []Place

	add := func(p Place) {
		if !selected[p.Code] {
			selected[p.Code] = true
			results = append(results, p)
		}
	}

	// Tier 1: exact code.
	for _, p := range catalog {
		if strings.ToLower(p.Code) == q {
			add(p)
		}
	}

	// Tier 2: city-name prefix.
	for _, p := range catalog {
		if strings.HasPrefix(strings.ToLower(p.City), q) {
			add(p)
		}
	}

	// Tier 3: substring anywhere.
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.City), q) ||
			strings.Contains(strings.ToLower(p.Airport), q) ||
			strings.Contains(strings.ToLower(p.Code), q) ||
			strings.Contains(strings.ToLower(p.Region), q) {
			add(p)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
