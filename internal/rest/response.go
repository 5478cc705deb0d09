package rest

type ResponseError struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}
