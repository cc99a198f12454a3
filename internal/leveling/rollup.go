package leveling

import "github.com/abhisek/levelup/internal/taxonomy"

// CategoryLevel derives a category's level from the current skill levels.
// Points are the sum of the category's skill levels; a skill missing from
// the map counts as MinLevel.
func CategoryLevel(tax taxonomy.Taxonomy, c taxonomy.Category, levels map[taxonomy.Key]int) int {
	total := 0
	for _, s := range tax.Skills(c) {
		lvl, ok := levels[taxonomy.Key{Category: c, Skill: s}]
		if !ok {
			lvl = MinLevel
		}
		total += lvl
	}
	return Level(total, tax.SkillCount(c)*MaxLevel)
}

// CategoryLevels derives every category's level at once.
func CategoryLevels(tax taxonomy.Taxonomy, levels map[taxonomy.Key]int) map[taxonomy.Category]int {
	out := make(map[taxonomy.Category]int, len(tax.Categories()))
	for _, c := range tax.Categories() {
		out[c] = CategoryLevel(tax, c, levels)
	}
	return out
}

// OverallLevel derives the overall level from the sum of category levels.
func OverallLevel(tax taxonomy.Taxonomy, levels map[taxonomy.Key]int) int {
	cats := tax.Categories()
	total := 0
	for _, c := range cats {
		total += CategoryLevel(tax, c, levels)
	}
	return Level(total, len(cats)*MaxLevel)
}
