package taxonomy

import "strings"

// Category identifies a group of related skills.
type Category string

const (
	CategoryLifeSkills      Category = "life_skills"
	CategoryContentCreation Category = "content_creation"
	CategoryFinancial       Category = "financial_literacy"
	CategoryCareer          Category = "career"
	CategoryVision          Category = "vision_strategy"
)

// Key uniquely identifies a skill within a category.
type Key struct {
	Category Category
	Skill    string
}

func (k Key) String() string {
	return string(k.Category) + "/" + k.Skill
}

// Taxonomy is the immutable catalog of categories and their skills.
// Build one with New (or use Default) and pass it to every component
// that needs it; there is no package-level mutable state.
type Taxonomy struct {
	categories []Category
	skills     map[Category][]string
	index      map[Key]struct{}
}

// New builds a Taxonomy from categories in display order and their skills.
// It rejects duplicate or empty identifiers so a typo in the catalog fails
// at load time rather than silently creating a new skill.
func New(categories []Category, skills map[Category][]string) (Taxonomy, error) {
	if err := validate(categories, skills); err != nil {
		return Taxonomy{}, err
	}

	t := Taxonomy{
		categories: append([]Category(nil), categories...),
		skills:     make(map[Category][]string, len(categories)),
		index:      make(map[Key]struct{}),
	}
	for _, c := range categories {
		t.skills[c] = append([]string(nil), skills[c]...)
		for _, s := range skills[c] {
			t.index[Key{Category: c, Skill: s}] = struct{}{}
		}
	}
	return t, nil
}

// Categories returns all categories in display order.
func (t Taxonomy) Categories() []Category {
	return append([]Category(nil), t.categories...)
}

// Skills returns the skills of a category in display order.
func (t Taxonomy) Skills(c Category) []string {
	return append([]string(nil), t.skills[c]...)
}

// Keys returns every (category, skill) key in display order.
func (t Taxonomy) Keys() []Key {
	keys := make([]Key, 0, len(t.index))
	for _, c := range t.categories {
		for _, s := range t.skills[c] {
			keys = append(keys, Key{Category: c, Skill: s})
		}
	}
	return keys
}

// Contains reports whether the key names a known skill.
func (t Taxonomy) Contains(k Key) bool {
	_, ok := t.index[k]
	return ok
}

// SkillCount returns the number of skills in a category.
func (t Taxonomy) SkillCount(c Category) int {
	return len(t.skills[c])
}

// TotalSkills returns the number of skills across all categories.
func (t Taxonomy) TotalSkills() int {
	return len(t.index)
}

// DisplayName renders a snake_case identifier as a title-cased label.
func DisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryLifeSkills:
		return "Life Skills"
	case CategoryContentCreation:
		return "Content Creation"
	case CategoryFinancial:
		return "Financial Literacy"
	case CategoryCareer:
		return "Career"
	case CategoryVision:
		return "Vision & Strategy"
	default:
		return DisplayName(string(c))
	}
}
