package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionResult is the denormalized per-question outcome snapshotted onto a
// Submission at grading time.
type QuestionResult struct {
	QuestionID        string   `json:"question_id"`
	SelectedOptionID  string   `json:"selected_option_id,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
	CorrectOptionID   string   `json:"correct_option_id,omitempty"`
	IsCorrect         bool     `json:"is_correct"`
	Credit            float64  `json:"credit"`
}

// Submission is the immutable record of one graded attempt. It is created
// exactly once per submit and never updated afterwards.
type Submission struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	QuizID         uint             `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz             `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID         *uint            `json:"user_id,omitempty" gorm:"index"`
	Answers        map[string]any   `json:"answers" gorm:"serializer:json"`
	Score          float64          `json:"score" gorm:"not null"`
	CorrectAnswers int              `json:"correct_answers" gorm:"not null"`
	TotalQuestions int              `json:"total_questions" gorm:"not null"`
	Results        []QuestionResult `json:"results" gorm:"serializer:json"`
	SubmittedAt    time.Time        `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
