package constants

// Posting defaults applied by the payload formatter when the source text
// does not specify a value.
const (
	DefaultJobType  = "Full-time"
	DefaultWorkMode = "Hybrid"

	// DeadlineDays is added to the formatting time to produce the default
	// application deadline.
	DeadlineDays = 30

	// DeadlineLayout is the calendar-date layout used for application
	// deadlines (no time component).
	DeadlineLayout = "2006-01-02"
)

// JobTypes holds the allowed values for the job_type field in Posting.
var JobTypes = []string{"Full-time", "Part-time", "Internship", "Contract"}

// WorkModes holds the allowed values for the work_mode field in Posting.
var WorkModes = []string{"On-site", "Remote", "Hybrid"}

// PostingStatus is the lifecycle state of a job posting.
type PostingStatus string

const (
	PostingOpen   PostingStatus = "OPEN"
	PostingClosed PostingStatus = "CLOSED"
)

// PostingStatuses holds the allowed values for the status field in Posting.
var PostingStatuses = []string{string(PostingOpen), string(PostingClosed)}
