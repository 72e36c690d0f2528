package model

import (
	"time"

	"github.com/ucilnica/quiz-api/internal/schema"
	"gorm.io/gorm"
)

type Question struct {
	ID          uint                `gorm:"primarykey" json:"id"`
	QuizID      uint                `json:"quiz_id" gorm:"not null;index"`
	Type        schema.QuestionType `json:"type" gorm:"not null"`
	Text        string              `json:"text" gorm:"type:text;not null"`
	TextSL      string              `json:"text_sl,omitempty" gorm:"column:text_sl;type:text"`
	TextHR      string              `json:"text_hr,omitempty" gorm:"column:text_hr;type:text"`
	OrderInQuiz int                 `json:"order_in_quiz" gorm:"not null"`

	// Answer key for single-answer types. Multi-select keys live on the
	// options themselves via Option.Correct.
	CorrectOptionID string `json:"correct_option_id,omitempty"`

	// Type-specific payload; present only for MULTIPLE_CHOICE questions.
	MultipleChoiceData *schema.MultipleChoiceData `json:"multiple_choice_data,omitempty" gorm:"serializer:json"`

	Options   []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
