package taxonomy

import "testing"

func TestDefaultShape(t *testing.T) {
	tax := Default()

	cats := tax.Categories()
	if len(cats) != 5 {
		t.Fatalf("categories = %d, want 5", len(cats))
	}
	for _, c := range cats {
		if n := tax.SkillCount(c); n != 10 {
			t.Errorf("category %q has %d skills, want 10", c, n)
		}
	}
	if n := tax.TotalSkills(); n != 50 {
		t.Errorf("total skills = %d, want 50", n)
	}
	if n := len(tax.Keys()); n != 50 {
		t.Errorf("keys = %d, want 50", n)
	}
}

func TestKeysOrderedByCatalog(t *testing.T) {
	tax := Default()
	keys := tax.Keys()

	if keys[0] != (Key{Category: CategoryLifeSkills, Skill: "communication"}) {
		t.Errorf("first key = %v", keys[0])
	}
	last := keys[len(keys)-1]
	if last != (Key{Category: CategoryVision, Skill: "personal_roadmapping"}) {
		t.Errorf("last key = %v", last)
	}
}

func TestContains(t *testing.T) {
	tax := Default()

	if !tax.Contains(Key{Category: CategoryCareer, Skill: "technical_mastery"}) {
		t.Error("expected known key to be contained")
	}
	if tax.Contains(Key{Category: CategoryCareer, Skill: "techncal_mastery"}) {
		t.Error("typo key should not be contained")
	}
	if tax.Contains(Key{Category: "hobbies", Skill: "communication"}) {
		t.Error("unknown category should not be contained")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		[]Category{"a", "a"},
		map[Category][]string{"a": {"x", "y"}},
	)
	if err == nil {
		t.Fatal("expected error for duplicate category")
	}

	_, err = New(
		[]Category{"a"},
		map[Category][]string{"a": {"x", "x"}},
	)
	if err == nil {
		t.Fatal("expected error for duplicate skill")
	}
}

func TestNewRejectsEmptyCategory(t *testing.T) {
	_, err := New(
		[]Category{"a"},
		map[Category][]string{"a": nil},
	)
	if err == nil {
		t.Fatal("expected error for category without skills")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"communication", "Communication"},
		{"critical_thinking_problem_solving", "Critical Thinking Problem Solving"},
		{"401k_optimization", "401k Optimization"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryDisplayName(CategoryVision); got != "Vision & Strategy" {
		t.Errorf("CategoryDisplayName = %q", got)
	}
	if got := CategoryDisplayName(Category("side_quests")); got != "Side Quests" {
		t.Errorf("fallback display name = %q", got)
	}
}
