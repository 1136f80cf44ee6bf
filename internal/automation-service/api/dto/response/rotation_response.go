package response

import "time"

type RotationResponse struct {
	Message   string `json:"message"`
	AlertSent bool   `json:"alert_sent"`
}

type HaProxyStatusResponse struct {
	Status int `json:"status"`
}

type ServerCountResponse struct {
	Count int `json:"count"`
}

type StatusMessageResponse struct {
	StatusMessage string `json:"status_message"`
}

type ValidHaProxyResponse struct {
	Valid bool `json:"valid"`
}

type RotationEventResponse struct {
	ID        string    `json:"id"`
	NodeName  string    `json:"node_name"`
	Backend   string    `json:"backend"`
	Server    string    `json:"server"`
	Action    string    `json:"action"`
	Manual    bool      `json:"manual"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
