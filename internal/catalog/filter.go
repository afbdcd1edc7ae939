package catalog

import (
	"strings"
)

// Result is the paged outcome of applying a filter state.
type Result struct {
	Items      []Entry `json:"items"`
	TotalCount int     `json:"total_count"`
	TotalPages int     `json:"total_pages"`
	Page       int     `json:"page"`
	PageItems  []Entry `json:"page_items"`
}

// View applies the filter state to the entries and pages the result.
// Pure and stateless: no storage access, no memory of previous calls,
// so the caller re-invokes it on every state change. The facets apply
// as a conjunction; their evaluation order only affects early exits.
func View(entries []Entry, state FilterState, categories Categories) Result {
	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	search := strings.ToLower(strings.TrimSpace(state.SearchText))
	ageToken := leadingToken(state.AgeFilter)

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !matchesSearch(e, search) {
			continue
		}
		if !matchesAge(e, state.AgeFilter, ageToken) {
			continue
		}
		if !matchesLevel(e, state.LevelFilter) {
			continue
		}
		if !matchesTopic(e, state, categories) {
			continue
		}
		filtered = append(filtered, e)
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	// Clamp the requested page so a stale page number from a previous
	// filter state still lands on a real page.
	page := state.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageItems:  filtered[start:end],
	}
}

// leadingToken extracts the numeric band from an age filter label,
// e.g. "7-10 years" -> "7-10".
func leadingToken(filter string) string {
	fields := strings.Fields(filter)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func matchesSearch(e Entry, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Description), search)
}

func matchesAge(e Entry, filter, token string) bool {
	if filter == "" || filter == AllAges || token == "" {
		return true
	}
	return strings.Contains(e.AgeLabel, token)
}

func matchesLevel(e Entry, filter string) bool {
	if filter == "" || filter == AllLevels {
		return true
	}
	return strings.EqualFold(e.Level, filter)
}

// matchesTopic selects by exact language when a deep link supplied
// one, otherwise by category membership.
func matchesTopic(e Entry, state FilterState, categories Categories) bool {
	if state.ExactLanguage != "" {
		return e.Language == state.ExactLanguage
	}
	if state.CategoryID == "" || state.CategoryID == AllCategories {
		return true
	}
	for _, lang := range categories[state.CategoryID] {
		if e.Language == lang {
			return true
		}
	}
	return false
}
