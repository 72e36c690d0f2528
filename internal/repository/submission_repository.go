package repository

import (
	"github.com/ucilnica/quiz-api/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindAllByQuizAndUser(quizID uint, userID *uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByQuizAndUser(quizID uint, userID *uint) ([]model.Submission, error) {
	var submissions []model.Submission
	query := r.db.Where("quiz_id = ?", quizID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}
