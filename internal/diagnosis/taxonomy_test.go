package diagnosis

import "testing"

func TestAllCategories_Count(t *testing.T) {
	all := AllCategories()
	if len(all) != 8 {
		t.Errorf("got %d categories, want 8", len(all))
	}
}

func TestAllCategories_Sorted(t *testing.T) {
	all := AllCategories()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("categories not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
}

func TestGetCategory_Found(t *testing.T) {
	c := GetCategory(CategoryComparingLiterals)
	if c == nil {
		t.Fatal("GetCategory(comparing_literals_error) returned nil")
	}
	if c.Label == "" {
		t.Error("label is empty")
	}
	if c.Description == "" {
		t.Error("description is empty")
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	if c := GetCategory("nonexistent"); c != nil {
		t.Errorf("GetCategory(nonexistent) = %v, want nil", c)
	}
	if ErrorCategory("nonexistent").Known() {
		t.Error("unknown category reported as known")
	}
}

func TestCategories_ReachableFromClassifier(t *testing.T) {
	reachable := make(map[ErrorCategory]bool)
	for _, lang := range SupportedLanguages() {
		for _, r := range RuntimeRules(lang) {
			reachable[r.Category] = true
		}
	}
	for _, d := range DefaultDetectors() {
		reachable[d.Category()] = true
	}

	for cat := range reachable {
		if !cat.Known() {
			t.Errorf("classifier produces %q, which is not in the taxonomy", cat)
		}
	}
	for _, c := range AllCategories() {
		if !reachable[c.ID] {
			t.Errorf("category %q has no rule or detector", c.ID)
		}
	}
}
