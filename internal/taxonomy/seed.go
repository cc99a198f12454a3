package taxonomy

// defaultSkills is the reference catalog: five life domains with ten
// skills each. The per-category count is a property of the catalog, not
// a constraint enforced by the Taxonomy type.
var defaultSkills = map[Category][]string{
	CategoryLifeSkills: {
		"communication", "critical_thinking_problem_solving", "time_management",
		"self_care_emotional_regulation", "cooking_nutrition", "car_home_maintenance",
		"digital_literacy", "interpersonal_social_skills", "independence", "learning_efficiency",
	},
	CategoryContentCreation: {
		"seo_literacy", "video_editing", "streaming", "long_form_content_output",
		"short_form_content_output", "charisma", "personality_authenticity",
		"online_presence", "consistency", "backlog_management",
	},
	CategoryFinancial: {
		"budgeting_savings", "emergency_fund_management", "investment_knowledge",
		"retirement_contributions_roth", "401k_optimization", "hsa_utilization",
		"insurance_literacy", "loan_understanding", "tax_optimization", "financial_goal_tracking",
	},
	CategoryCareer: {
		"technical_mastery", "soft_skills_work", "time_management_work",
		"growth_milestones", "professional_networking", "contribution_tracking",
		"performance_feedback", "industry_knowledge", "leadership_development", "project_management",
	},
	CategoryVision: {
		"daily_goal_setting", "weekly_planning", "monthly_goal_review",
		"quarterly_assessment", "yearly_vision_alignment", "system_design",
		"reflection_reviewing", "strategic_thinking", "priority_management", "personal_roadmapping",
	},
}

var defaultCategories = []Category{
	CategoryLifeSkills,
	CategoryContentCreation,
	CategoryFinancial,
	CategoryCareer,
	CategoryVision,
}

var defaultTaxonomy = mustNew(defaultCategories, defaultSkills)

// Default returns the reference taxonomy.
func Default() Taxonomy {
	return defaultTaxonomy
}

func mustNew(categories []Category, skills map[Category][]string) Taxonomy {
	t, err := New(categories, skills)
	if err != nil {
		panic("taxonomy: invalid default catalog: " + err.Error())
	}
	return t
}
