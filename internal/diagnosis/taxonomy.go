package diagnosis

import "sort"

// CategoryInfo describes one category of the taxonomy.
type CategoryInfo struct {
	ID          ErrorCategory
	Label       string
	Description string
}

// registry is the package-level category registry, keyed by ID.
var registry map[ErrorCategory]*CategoryInfo

func init() {
	registry = make(map[ErrorCategory]*CategoryInfo, len(seedCategories))
	for i := range seedCategories {
		c := &seedCategories[i]
		registry[c.ID] = c
	}
}

// GetCategory returns a category by ID, or nil if not found.
func GetCategory(id ErrorCategory) *CategoryInfo {
	return registry[id]
}

// Known reports whether c is part of the taxonomy.
func (c ErrorCategory) Known() bool {
	_, ok := registry[c]
	return ok
}

// AllCategories returns every category in the taxonomy, sorted by ID.
func AllCategories() []*CategoryInfo {
	result := make([]*CategoryInfo, 0, len(registry))
	for _, c := range registry {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
