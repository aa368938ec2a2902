package domain

// Drafts are transient modal-backed edit buffers: they exist only while a
// workflow is open and are discarded on cancel or successful commit.

// EditLogDraft is the draft behind the DAILY payroll log edit modal.
type EditLogDraft struct {
	ID        int64   `json:"id"`
	JobName   string  `json:"job_name"`
	WorkHours float64 `json:"work_hours"`
}

// EditWorkerDraft is the draft behind the roster edit modal.
type EditWorkerDraft struct {
	ID     int64  `json:"id"`
	Phone  string `json:"phone"`
	Center string `json:"center"`
}

// NewJobDraft is the job-creation form. Wage and Intensity stay raw strings
// until submit so that non-numeric input can fall back to defaults instead of
// failing the form.
type NewJobDraft struct {
	JobName      string `validate:"required"`
	Intensity    string
	HourlyWage   string
	RequiredCert string
}
