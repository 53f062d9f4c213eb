package domain

// NCCOAction is one step of a Vonage call control object.
type NCCOAction struct {
	Action    string   `json:"action"`
	StreamURL []string `json:"streamUrl,omitempty"`
	Text      string   `json:"text,omitempty"`
	Loop      int      `json:"loop,omitempty"`
}

type NCCO []NCCOAction

const AudioNotConfiguredText = "Audio URL is not configured."

// AnswerNCCO streams audioURL, or speaks a fallback when it is empty.
func AnswerNCCO(audioURL string) NCCO {
	if audioURL == "" {
		return NCCO{{Action: "talk", Text: AudioNotConfiguredText}}
	}
	return NCCO{{Action: "stream", StreamURL: []string{audioURL}}}
}
