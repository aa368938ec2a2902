package domain

// SMSMessage is one simulated task-assignment message from GET /sms.
type SMSMessage struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}
