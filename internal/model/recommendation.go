package model

// RecommendationResult is one scored match, in the order the service ranked it.
type RecommendationResult struct {
	JobID           string   `json:"job_id"`
	Title           string   `json:"title"`
	Score           float64  `json:"score"`
	Why             string   `json:"why"`
	MatchedSkills   []string `json:"matched_skills"`
	KeyTermsOverlap []string `json:"key_terms_overlap,omitempty"`
}

type RecommendResponse struct {
	Results []RecommendationResult `json:"results"`
	Debug   map[string]any         `json:"debug,omitempty"`
}
