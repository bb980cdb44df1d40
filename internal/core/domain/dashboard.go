package domain

// RoleProgress is one dashboard row.
type RoleProgress struct {
	RoleKey             string `json:"roleKey"`
	Title               string `json:"title"`
	Stage               int    `json:"stage"`
	CompletedMilestones int    `json:"completedMilestones"`
	TotalMilestones     int    `json:"totalMilestones"`
	Percent             int    `json:"percent"`
	HoursRemaining      int    `json:"hoursRemaining"`
}

type Dashboard struct {
	Roles                    []RoleProgress `json:"roles"`
	TotalHours               float64        `json:"totalHours"`
	OverallProgress          int            `json:"overallProgress"`
	TotalMilestonesCompleted int            `json:"totalMilestonesCompleted"`
}
