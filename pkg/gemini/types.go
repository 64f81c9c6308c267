package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Schema is a JSON-schema-shaped data contract for structured output.
// Field names and types follow the Gemini responseSchema format.
type Schema map[string]interface{}

// GenerationConfig holds optional generation settings. Setting
// ResponseMIMEType to "application/json" together with ResponseSchema
// constrains the model to emit a single JSON value matching the schema.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   Schema  `json:"responseSchema,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// Text returns the first candidate's first text part, or "".
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
