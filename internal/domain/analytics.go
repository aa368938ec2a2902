package domain

import "encoding/json"

// CenterTrend is one monthly aggregate from GET /analytics. The wire shape is
// {"month": "2025-11", "<center name>": <score>, ...} with center names as
// dynamic keys, so decoding folds everything except "month" into Centers.
type CenterTrend struct {
	Month   string
	Centers map[string]float64
}

func (t *CenterTrend) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Centers = make(map[string]float64, len(raw))
	for key, val := range raw {
		if key == "month" {
			if err := json.Unmarshal(val, &t.Month); err != nil {
				return err
			}
			continue
		}
		var score float64
		if err := json.Unmarshal(val, &score); err != nil {
			// Non-numeric extras are skipped rather than failing the slot.
			continue
		}
		t.Centers[key] = score
	}
	return nil
}

func (t CenterTrend) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Centers)+1)
	out["month"] = t.Month
	for center, score := range t.Centers {
		out[center] = score
	}
	return json.Marshal(out)
}
