package model

import (
	"time"

	"gorm.io/gorm"
)

// Option is the persisted row for one selectable answer. It keeps the flat
// multilingual text columns for backward compatibility; ContentType
// discriminates how internal/content rebuilds the in-memory representation.
type Option struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuestionID  uint           `json:"question_id" gorm:"not null;index"`
	Text        string         `json:"text"`
	TextSL      string         `json:"text_sl,omitempty" gorm:"column:text_sl"`
	TextHR      string         `json:"text_hr,omitempty" gorm:"column:text_hr"`
	ImageURL    string         `json:"image_url,omitempty"`
	AltText     string         `json:"alt_text,omitempty"`
	ContentType string         `json:"content_type,omitempty"` // "text", "image" (legacy) or "mixed"
	ImageSuffix string         `json:"image_suffix,omitempty"`
	Correct     bool           `json:"correct" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
