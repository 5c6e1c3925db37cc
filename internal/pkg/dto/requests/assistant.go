package requests

type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,language_code"`
}
