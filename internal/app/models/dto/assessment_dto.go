package dto

import "time"

// AnswerInput is one rated question in a submission
type AnswerInput struct {
	QuestionID int `json:"questionId" binding:"required,min=1"`
	Rating     int `json:"rating" binding:"required,min=1,max=5"`
}

// SubmitAssessmentRequest represents a full assessment submission.
// Answers must cover every question in the bank exactly once.
type SubmitAssessmentRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,dive"`
	Email   *string       `json:"email,omitempty" binding:"omitempty,email"`
}

// ElementScore is one element's percentage in a result
type ElementScore struct {
	Element    string `json:"element" example:"aquatic"`
	Name       string `json:"name" example:"Aquatic"`
	Percentage int    `json:"percentage" example:"73"`
}

// AssessmentResultResponse represents a scored assessment
type AssessmentResultResponse struct {
	PublicID        string         `json:"publicId"`
	Scores          []ElementScore `json:"scores"`
	DominantElement string         `json:"dominantElement"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// QuestionResponse is one question as served to clients
type QuestionResponse struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Element string `json:"element"`
}
