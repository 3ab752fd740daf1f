package model

// DefaultTopK is the number of recommendations asked for. Not user-tunable.
const DefaultTopK = 5

// Candidate is built fresh from the form on every request.
type Candidate struct {
	Name       string   `json:"name,omitempty"`
	ResumeText string   `json:"resume_text"`
	Skills     []string `json:"skills"`
}

type RecommendRequest struct {
	Candidate Candidate `json:"candidate"`
	TopK      int       `json:"top_k"`
}

// AnalyzeRequest marshals a nil TargetJobID as JSON null.
type AnalyzeRequest struct {
	ResumeText  string  `json:"resume_text"`
	TargetJobID *string `json:"target_job_id"`
}
