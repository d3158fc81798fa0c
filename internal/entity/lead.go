package entity

import "strings"

// Lead: one business surfaced by a place search. Optional fields are
// pointers so "unknown" never collapses into zero/false.
type Lead struct {
	PlaceID     string   `json:"placeId"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	MapsURL     string   `json:"mapsUrl"`
	AISummary   *string  `json:"aiSummary,omitempty"`
	IsOpen      *bool    `json:"isOpen,omitempty"`
}

func (l *Lead) HasPhone() bool {
	return l.Phone != nil && *l.Phone != ""
}

func (l *Lead) HasWebsite() bool {
	return l.Website != nil && *l.Website != ""
}

// FilterOptions: user-chosen predicates. Every field is independently
// optional; an unset field filters nothing.
type FilterOptions struct {
	HasWebsite    bool     `json:"hasWebsite"`
	HasPhone      bool     `json:"hasPhone"`
	MinRating     *float64 `json:"minRating,omitempty"`
	MinReviews    *int     `json:"minReviews,omitempty"`
	ExcludeClosed bool     `json:"excludeClosed"`
	ExcludeChains bool     `json:"excludeChains"`
}

// FilterLeads applies the configured predicates as a conjunction, checked
// in a fixed order (website, phone, rating, reviews, closed). The result
// is a subsequence of the input: no reordering, no duplication.
func FilterLeads(leads []Lead, opts FilterOptions) []Lead {
	filtered := make([]Lead, 0, len(leads))

	for _, lead := range leads {
		if opts.HasWebsite && !lead.HasWebsite() {
			continue
		}
		if opts.HasPhone && !lead.HasPhone() {
			continue
		}
		if opts.MinRating != nil && (lead.Rating == nil || *lead.Rating < *opts.MinRating) {
			continue
		}
		if opts.MinReviews != nil && (lead.ReviewCount == nil || *lead.ReviewCount < *opts.MinReviews) {
			continue
		}
		// Unknown open-state is kept. Only an explicit "closed" is rejected.
		if opts.ExcludeClosed && lead.IsOpen != nil && !*lead.IsOpen {
			continue
		}
		filtered = append(filtered, lead)
	}

	return filtered
}

// ExcludeChains drops every lead whose normalized name appears more than
// once in the set. Exact-name collision is the only chain signal we have,
// so two unrelated businesses sharing a name are both dropped.
func ExcludeChains(leads []Lead) []Lead {
	nameCounts := make(map[string]int, len(leads))
	for _, lead := range leads {
		nameCounts[normalizeName(lead.Name)]++
	}

	kept := make([]Lead, 0, len(leads))
	for _, lead := range leads {
		if nameCounts[normalizeName(lead.Name)] <= 1 {
			kept = append(kept, lead)
		}
	}
	return kept
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
