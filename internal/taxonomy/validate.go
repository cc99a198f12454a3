package taxonomy

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validate(categories []Category, skills map[Category][]string) error {
	var errs []string

	catSet := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if c == "" {
			errs = append(errs, "empty category identifier")
			continue
		}
		if catSet[c] {
			errs = append(errs, fmt.Sprintf("duplicate category: %q", c))
		}
		catSet[c] = true
	}

	for c := range skills {
		if !catSet[c] {
			errs = append(errs, fmt.Sprintf("skills defined for unlisted category %q", c))
		}
	}

	for _, c := range categories {
		list := skills[c]
		if len(list) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no skills", c))
		}
		seen := make(map[string]bool, len(list))
		for _, s := range list {
			if s == "" {
				errs = append(errs, fmt.Sprintf("category %q contains an empty skill identifier", c))
				continue
			}
			if seen[s] {
				errs = append(errs, fmt.Sprintf("duplicate skill %q in category %q", s, c))
			}
			seen[s] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid taxonomy:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
