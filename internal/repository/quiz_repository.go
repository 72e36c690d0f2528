package repository

import (
	"github.com/ucilnica/quiz-api/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	Update(quiz *model.Quiz) error
	Delete(id uint) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllWithQuestionCount() ([]QuizWithCount, error)
	ReplaceQuestions(quizID uint, questions []model.Question) error
	SaveQuestion(question *model.Question) error
}

type QuizWithCount struct {
	model.Quiz
	QuestionCount int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// Creating with associations persists questions and their options in
	// one go; IDs are populated on return.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Select("Questions", "Questions.Options").Delete(&model.Quiz{ID: id}).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_quiz ASC")
		}).
		Preload("Questions.Options").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithQuestionCount() ([]QuizWithCount, error) {
	var results []QuizWithCount
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Where("quizzes.deleted_at IS NULL").
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

// ReplaceQuestions swaps a quiz's question set atomically, used by the
// authoring update flow.
func (r *quizRepository) ReplaceQuestions(quizID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var old []model.Question
		if err := tx.Where("quiz_id = ?", quizID).Find(&old).Error; err != nil {
			return err
		}
		for i := range old {
			if err := tx.Select("Options").Delete(&old[i]).Error; err != nil {
				return err
			}
		}
		for i := range questions {
			questions[i].QuizID = quizID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) SaveQuestion(question *model.Question) error {
	return r.db.Save(question).Error
}
