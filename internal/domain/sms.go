package domain

import "encoding/json"

// SendSMSRequest targets the SMS gateway.
type SendSMSRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Message string `json:"message" validate:"required,notblank"`
}

// TestSMSRequest targets the voice/SMS aggregator.
type TestSMSRequest struct {
	To   string `json:"to" validate:"required,phone"`
	Text string `json:"text" validate:"required,notblank"`
}

type SMSResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}
