package types

// NotAvailable is the placeholder the job boards give us for absent fields.
const NotAvailable = "N/A"

// JobListing is one scraped job posting. Every field is free text; a field
// the source did not provide carries NotAvailable.
type JobListing struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	JobURL         string `json:"job_url"`
	SourcePlatform string `json:"source_platform"`
	PostedDate     string `json:"posted_date"`
	Salary         string `json:"salary"`
}

// GapAnalysis is the payload of the gaps_analyzed pipeline step.
type GapAnalysis struct {
	MissingSkills   []string `json:"missing_skills"`
	JobMarketSkills []string `json:"job_market_skills"`
}
