package domain

// JobSetting is one job-weight record from GET /settings. JobName is the
// unique key; Ratio is an integer percent 0–100, edited independently per job
// (the backend does not require ratios to sum to 100).
type JobSetting struct {
	JobName      string  `json:"job_name"`
	Intensity    float64 `json:"intensity"`
	HourlyWage   int64   `json:"hourly_wage"`
	Ratio        int     `json:"ratio"`
	RequiredCert *string `json:"required_cert,omitempty"`
}
