package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/example/qaforum/internal/models"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the provided database connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser inserts a user. The unique index on phone is the
// authoritative duplicate guard; a constraint violation from a
// concurrent registration is reported as ErrDuplicatePhone.
func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePhone
		}
		return err
	}
	return nil
}

func (s *GormStore) FindUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *GormStore) FindQuestionByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &question, nil
}

func (s *GormStore) ListQuestions(limit, offset int) ([]models.Question, error) {
	query := s.db.Model(&models.Question{}).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) CountQuestions() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) SearchQuestions(term string) ([]models.Question, error) {
	pattern := "%" + term + "%"

	var questions []models.Question
	err := s.db.Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) FindQuestionsByAuthor(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("author_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) CreateAnswer(answer *models.Answer) error {
	return s.db.Create(answer).Error
}

func (s *GormStore) FindAnswersForQuestion(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Where("question_id = ?", questionID).
		Order("id DESC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (s *GormStore) CountAnswers(questionID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *GormStore) FindSession(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "token = ?", token).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &session, nil
}

func (s *GormStore) TouchSession(token string, expiresAt time.Time) error {
	return s.db.Model(&models.Session{}).
		Where("token = ?", token).
		Update("expires_at", expiresAt).Error
}

func (s *GormStore) DeleteSession(token string) error {
	return s.db.Delete(&models.Session{}, "token = ?", token).Error
}

func (s *GormStore) DeleteExpiredSessions(now time.Time) error {
	return s.db.Delete(&models.Session{}, "expires_at < ?", now).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
