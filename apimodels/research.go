package apimodels

type ResearchRequest struct {
	// Query is the natural language research request, typically a company
	// name or ticker plus the focus areas to investigate
	Query string `json:"query"`

	// Optional parameters to control research behavior
	Options ResearchOptions `json:"options,omitempty"`
}

type ResearchOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`

	// MaxSteps caps the number of research steps before a best-effort
	// report is forced
	MaxSteps int `json:"maxSteps,omitempty"`
}

type ResearchResponse struct {
	// The finished markdown report
	Report string `json:"report"`

	// Any supporting data gathered during research
	SupportingData *SupportingData `json:"supportingData,omitempty"`

	// Metadata about the research run
	Metadata ResearchMetadata `json:"metadata"`
}

type SupportingData struct {
	// Search queries executed
	Queries []string `json:"queries,omitempty"`

	// Raw search results retrieved, step by step
	SearchData interface{} `json:"searchData,omitempty"`
}

type ResearchMetadata struct {
	// Time taken for the research run
	Duration string `json:"duration"`

	// Model used
	Model string `json:"model"`

	// Tokens used across LLM calls
	TokensUsed int64 `json:"tokensUsed"`

	// Tracks agent steps
	Steps int `json:"steps"`

	// RequestID is set in serve mode for log correlation
	RequestID string `json:"requestId,omitempty"`
}
