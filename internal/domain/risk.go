package domain

// RiskWorker is one at-risk roster entry from GET /risk: a worker whose
// fatigue intensity crossed the backend's threshold today and yesterday.
type RiskWorker struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone,omitempty"`
	Center         string  `json:"center,omitempty"`
	TodayIntensity float64 `json:"today_int"`
	PrevIntensity  float64 `json:"prev_int"`
}

// RiskBoard maps center name to its at-risk workers, exactly as the backend
// groups them.
type RiskBoard map[string][]RiskWorker
