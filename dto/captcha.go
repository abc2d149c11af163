package dto

type AssessmentQuery struct {
	ProjectID string `form:"projectId"`
	SiteKey   string `form:"siteKey"`
	Token     string `form:"token"`
	Action    string `form:"action"`
}

// ScoreResponse always carries the score key; a nil Score renders as null.
type ScoreResponse struct {
	Score *float32 `json:"score"`
}
