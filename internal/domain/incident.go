package domain

type IncidentLogRequest struct {
	GuardID   string `json:"guardId"`
	SiteID    string `json:"siteId"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message" validate:"required,notblank"`
}

type IncidentLogResponse struct {
	Status       string `json:"status"`
	AssistantLog string `json:"assistantLog"`
}
