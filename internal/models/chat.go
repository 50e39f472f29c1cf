package models

// Answer provenance values carried in the "source" field of a chat response.
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
	SourceError    = "error"
)

// ChatResponse is the envelope serialized for every chat outcome. Response is
// never empty; when both the model and the fallback produce nothing a static
// profile summary is substituted.
type ChatResponse struct {
	Error     string `json:"error,omitempty"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
	Note      string `json:"note,omitempty"`
}
