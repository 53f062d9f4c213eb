package domain

import "encoding/json"

type AlertRequest struct {
	SiteID      string `json:"siteId"`
	GuardID     string `json:"guardId"`
	TriggeredAt string `json:"triggeredAt"`
	Source      string `json:"source"`
}

// PhaseStatus tags the aggregate outcome of one fan-out phase.
type PhaseStatus string

const (
	PhaseOK      PhaseStatus = "ok"
	PhasePartial PhaseStatus = "partial"
	PhaseFailed  PhaseStatus = "failed"
	PhaseSkipped PhaseStatus = "skipped"
)

// Outcome is the result of one outbound attempt towards one recipient.
type Outcome struct {
	Recipient string          `json:"recipient"`
	OK        bool            `json:"ok"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type Phase struct {
	Status  PhaseStatus `json:"status"`
	Reason  string      `json:"reason,omitempty"`
	Results []Outcome   `json:"results"`
}

// AlertResult is the two-phase outcome of one alert. SMS is mandatory and
// decides success; Calls is attached for information only.
type AlertResult struct {
	AlertID    string   `json:"alertId"`
	Text       string   `json:"-"`
	Recipients []string `json:"recipients"`
	SMS        Phase    `json:"sms"`
	Calls      Phase    `json:"calls"`
}

func (r AlertResult) Succeeded() bool {
	return r.SMS.Status == PhaseOK || r.SMS.Status == PhasePartial
}

type AlertResponse struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	AlertID     string      `json:"alertId"`
	Recipients  []string    `json:"recipients"`
	SMSPhase    PhaseStatus `json:"smsPhase"`
	SMSResults  []Outcome   `json:"smsResults"`
	CallPhase   PhaseStatus `json:"callPhase"`
	CallResults []Outcome   `json:"callResults"`
}

type TriggerAlertResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
