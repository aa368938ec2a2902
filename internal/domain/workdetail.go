package domain

// WorkDetail is one work-log line from GET /workforce/detail, the per-worker
// pay-stub breakdown behind a payroll row.
type WorkDetail struct {
	WorkDate  string  `json:"work_date"`
	JobName   string  `json:"job_name"`
	TimeSlot  string  `json:"time_slot,omitempty"`
	WorkHours float64 `json:"work_hours"`
	TotalPay  int64   `json:"total_pay"`
}
