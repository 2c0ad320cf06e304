package content

// Service describes an offering shown on the services page.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

// About holds the about-page content.
type About struct {
	Description  string      `json:"description"`
	Mission      string      `json:"mission"`
	Vision       string      `json:"vision"`
	ProfileImage string      `json:"profileImage"`
	Logo         string      `json:"logo"`
	Values       []Value     `json:"values"`
	Milestones   []Milestone `json:"milestones"`
}

// Value is a single value statement.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// Milestone is a dated entry in the company timeline.
type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}
