package domain

// PayrollEntry is one payment record. REGULAR responses aggregate per worker
// (Days/Hours/PaymentAmount); DAILY responses are per work log and carry the
// log ID needed for the edit flow.
type PayrollEntry struct {
	ID            int64   `json:"id,omitempty"`
	Name          string  `json:"name"`
	JobName       string  `json:"job_name,omitempty"`
	TimeSlot      string  `json:"time_slot,omitempty"`
	Days          int     `json:"days,omitempty"`
	Hours         float64 `json:"hours,omitempty"`
	PaymentAmount int64   `json:"payment_amount"`
	WorkDate      string  `json:"work_date,omitempty"`
}

// DailyPayroll is the DAILY-mode envelope of GET /payroll. The engine unwraps
// List into the payroll slot; TargetDate reflects the backend's pay-delay shift.
type DailyPayroll struct {
	TargetDate string         `json:"target_date"`
	List       []PayrollEntry `json:"list"`
}
