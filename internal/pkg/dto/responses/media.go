package responses

type Transcription struct {
	Transcript string `json:"transcript"`
	English    string `json:"english"`
	Malay      string `json:"malay"`
}

type Meeting struct {
	JoinURL  string `json:"join_url"`
	StartURL string `json:"start_url"`
}

type AssistantAnswer struct {
	Answer   string `json:"answer"`
	Language string `json:"language,omitempty"`
}
