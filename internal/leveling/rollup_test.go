package leveling

import (
	"testing"

	"github.com/abhisek/levelup/internal/taxonomy"
)

func TestCategoryLevelMissingSkillsDefault(t *testing.T) {
	tax := taxonomy.Default()
	cat := taxonomy.CategoryLifeSkills

	// Empty map: every skill counts as 1, so 10 points out of 1000.
	got := CategoryLevel(tax, cat, nil)
	want := Level(10, 1000)
	if got != want {
		t.Errorf("CategoryLevel(empty) = %d, want %d", got, want)
	}
}

func TestCategoryLevelSumsSkills(t *testing.T) {
	tax := taxonomy.Default()
	cat := taxonomy.CategoryLifeSkills

	levels := make(map[taxonomy.Key]int)
	for _, s := range tax.Skills(cat) {
		levels[taxonomy.Key{Category: cat, Skill: s}] = 50
	}

	got := CategoryLevel(tax, cat, levels)
	want := Level(500, 1000)
	if got != want {
		t.Errorf("CategoryLevel(all 50) = %d, want %d", got, want)
	}
	if got < 49 || got > 51 {
		t.Errorf("CategoryLevel(all 50) = %d, want ~50", got)
	}
}

func TestOverallLevelAllMax(t *testing.T) {
	tax := taxonomy.Default()

	levels := make(map[taxonomy.Key]int)
	for _, k := range tax.Keys() {
		levels[k] = 100
	}

	if got := OverallLevel(tax, levels); got != 100 {
		t.Errorf("OverallLevel(all 100) = %d, want 100", got)
	}
}

func TestOverallLevelFreshStore(t *testing.T) {
	tax := taxonomy.Default()

	// All skills at 1: each category levels to 1, overall 5/500 points.
	got := OverallLevel(tax, nil)
	want := Level(5, 500)
	if got != want {
		t.Errorf("OverallLevel(fresh) = %d, want %d", got, want)
	}
}

func TestCategoryLevelsCoversAllCategories(t *testing.T) {
	tax := taxonomy.Default()
	got := CategoryLevels(tax, nil)
	if len(got) != len(tax.Categories()) {
		t.Fatalf("CategoryLevels returned %d entries, want %d", len(got), len(tax.Categories()))
	}
	for c, lvl := range got {
		if lvl < MinLevel || lvl > MaxLevel {
			t.Errorf("category %q level %d out of range", c, lvl)
		}
	}
}
