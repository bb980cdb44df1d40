package domain

type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectPlanned    ProjectStatus = "planned"
)

type PortfolioProject struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Role         string        `json:"role"`
	Skills       []string      `json:"skills"`
	Duration     string        `json:"duration"`
	Status       ProjectStatus `json:"status"`
	Link         string        `json:"link,omitempty"`
	Achievements []string      `json:"achievements"`
}

// PortfolioStats summarises a project list.
type PortfolioStats struct {
	TotalProjects     int `json:"totalProjects"`
	CompletedProjects int `json:"completedProjects"`
	SkillsCount       int `json:"skillsCount"`
	TotalHours        int `json:"totalHours"`
}

// hoursPerProject is six weeks at forty hours.
const hoursPerProject = 6 * 40

func ComputePortfolioStats(projects []PortfolioProject) PortfolioStats {
	stats := PortfolioStats{TotalProjects: len(projects), TotalHours: len(projects) * hoursPerProject}
	skills := make(map[string]struct{})
	for _, p := range projects {
		if p.Status == ProjectCompleted {
			stats.CompletedProjects++
		}
		for _, s := range p.Skills {
			skills[s] = struct{}{}
		}
	}
	stats.SkillsCount = len(skills)
	return stats
}

// DemoProjects is shown until the session saves its own list.
func DemoProjects() []PortfolioProject {
	return []PortfolioProject{
		{
			ID:          "1",
			Title:       "E-commerce Sales Analysis Dashboard",
			Description: "Built an interactive dashboard analyzing sales trends, customer behavior, and revenue forecasts for a mid-sized e-commerce platform.",
			Role:        "Data Analyst",
			Skills:      []string{"SQL", "Tableau", "Python", "Excel"},
			Duration:    "6 weeks",
			Status:      ProjectCompleted,
			Link:        "https://example.com/dashboard",
			Achievements: []string{
				"Increased sales insights by 40% for stakeholders",
				"Automated monthly reporting, saving 20 hours/month",
				"Identified key customer segments, improving targeting by 25%",
			},
		},
		{
			ID:          "2",
			Title:       "Customer Churn Prediction Model",
			Description: "Developed a machine learning model to predict customer churn with 87% accuracy, enabling proactive retention strategies.",
			Role:        "Machine Learning Engineer",
			Skills:      []string{"Python", "Scikit-learn", "Pandas", "Statistics"},
			Duration:    "8 weeks",
			Status:      ProjectCompleted,
			Link:        "https://github.com/example/churn-model",
			Achievements: []string{
				"Achieved 87% prediction accuracy",
				"Saved company $200K annually through early interventions",
				"Published methodology blog post (500+ views)",
			},
		},
	}
}
