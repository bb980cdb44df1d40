package domain

// RoleCard is a browsable career role.
type RoleCard struct {
	Title       string   `json:"title"       yaml:"title"`
	Key         string   `json:"key"         yaml:"-"`
	Demand      string   `json:"demand"      yaml:"demand"`
	SalaryBand  string   `json:"salaryBand"  yaml:"salaryBand"`
	Skills      []string `json:"skills"      yaml:"skills"`
	Description string   `json:"description" yaml:"description"`
	HasRoadmap  bool     `json:"hasRoadmap"  yaml:"-"`
}

type Mentor struct {
	ID           string   `json:"id"           yaml:"id"`
	Name         string   `json:"name"         yaml:"name"`
	Title        string   `json:"title"        yaml:"title"`
	Expertise    []string `json:"expertise"    yaml:"expertise"`
	Bio          string   `json:"bio"          yaml:"bio"`
	Rating       float64  `json:"rating"       yaml:"rating"`
	Reviews      int      `json:"reviews"      yaml:"reviews"`
	Location     string   `json:"location"     yaml:"location"`
	HourlyRate   int      `json:"hourlyRate"   yaml:"hourlyRate"`
	Availability string   `json:"availability" yaml:"availability"`
}

// MentorFilter narrows the mentor list. Zero values match everything.
type MentorFilter struct {
	Expertise     string
	MaxHourlyRate int
}
