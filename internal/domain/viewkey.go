package domain

// Tab identifies one of the six dashboard views. The active tab determines
// which backend resource is fetched.
type Tab string

const (
	TabRisk      Tab = "risk"
	TabAnalytics Tab = "analytics"
	TabWorkers   Tab = "workers"
	TabPayroll   Tab = "payroll"
	TabSMS       Tab = "sms"
	TabSettings  Tab = "settings"
)

// Mode is the top-level employment category filter. It changes both the
// endpoints queried and the shape of returned records.
type Mode string

const (
	ModeRegular Mode = "REGULAR"
	ModeDaily   Mode = "DAILY"
)

// ViewKey is the composite fetch descriptor: the exact request issued for a
// tab is a function of this value and nothing else. Center is blank for the
// settings tab, where the selector is irrelevant.
type ViewKey struct {
	Tab    Tab
	Mode   Mode
	Center string
	Month  string // YYYY-MM month selector
	Date   string // YYYY-MM-DD day selector
}

// DateFilter returns the date parameter for payroll and worker-detail
// requests: the month selector under REGULAR, the day selector under DAILY.
func (k ViewKey) DateFilter() string {
	if k.Mode == ModeDaily {
		return k.Date
	}
	return k.Month
}
