package model

type AnalysisSuggestion struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// AnalysisResponse is the /analyze payload. MissingKeywords may be absent.
type AnalysisResponse struct {
	Suggestions     []AnalysisSuggestion `json:"suggestions"`
	DetectedSkills  []string             `json:"detected_skills,omitempty"`
	MissingKeywords []string             `json:"missing_keywords,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
