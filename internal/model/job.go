package model

// Job is a position owned by the scoring service. Read-only on this side.
type Job struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
