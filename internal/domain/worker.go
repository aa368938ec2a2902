package domain

// Worker is one roster record from GET /workers/list.
// Cert and MonthFatigue are only populated for REGULAR workers.
type Worker struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Center       string   `json:"center"`
	Cert         *string  `json:"cert,omitempty"`
	MonthFatigue *float64 `json:"month_fatigue,omitempty"`
}
