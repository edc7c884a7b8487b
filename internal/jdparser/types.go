package jdparser

// RawDocument is an uploaded job-description file: raw bytes plus the
// declared content type. It lives only for the duration of one parse call.
type RawDocument struct {
	Content     []byte
	ContentType string
}

// JobRecord is the structured extraction before output formatting.
// Every field is populated independently; extraction failures degrade a
// field to its empty value, never the whole record. Description always
// holds the complete source text.
type JobRecord struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Experience   string   `json:"experience"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

// ValidationResult collects the outcome of validating a JobRecord.
// All checks run independently; every applicable error is collected.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// JobPostingPayload is the externally consumable form of a JobRecord:
// fields renamed and defaulted, ready for submission to the posting store.
type JobPostingPayload struct {
	Title               string   `json:"title"`
	CompanyName         string   `json:"companyName"`
	Location            string   `json:"location"`
	SalaryRange         string   `json:"salaryRange"`
	ExperienceRequired  string   `json:"experienceRequired"`
	SkillsRequired      []string `json:"skillsRequired"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	JobType             string   `json:"jobType"`
	WorkMode            string   `json:"workMode"`
	ApplicationDeadline string   `json:"applicationDeadline"`
}

// ParseResult is the top-level outcome of one parse call. Success is false
// only for loader- and decode-level failures; extraction-internal problems
// degrade fields instead. Data is nil on failure.
type ParseResult struct {
	Success      bool       `json:"success"`
	Data         *JobRecord `json:"data"`
	OriginalText string     `json:"originalText,omitempty"`
	Error        string     `json:"error,omitempty"`
}
