package store

import (
	"errors"
	"time"

	"github.com/example/qaforum/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicatePhone is returned when a user with the same phone
	// number already exists.
	ErrDuplicatePhone = errors.New("phone already registered")
)

// Store is the data access layer for users, questions, answers and
// sessions. Handlers depend on this interface rather than on the
// database connection directly.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByPhone(phone string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)

	CreateQuestion(question *models.Question) error
	FindQuestionByID(id uint) (*models.Question, error)
	// ListQuestions returns questions ordered by creation time, newest
	// first. A non-positive limit returns all questions.
	ListQuestions(limit, offset int) ([]models.Question, error)
	CountQuestions() (int64, error)
	// SearchQuestions matches the term as a substring of the title or
	// the content. An empty term matches every question.
	SearchQuestions(term string) ([]models.Question, error)
	FindQuestionsByAuthor(userID uint) ([]models.Question, error)

	CreateAnswer(answer *models.Answer) error
	// FindAnswersForQuestion returns answers ordered by descending ID,
	// so the newest answer comes first.
	FindAnswersForQuestion(questionID uint) ([]models.Answer, error)
	CountAnswers(questionID uint) (int64, error)

	CreateSession(session *models.Session) error
	FindSession(token string) (*models.Session, error)
	TouchSession(token string, expiresAt time.Time) error
	DeleteSession(token string) error
	DeleteExpiredSessions(now time.Time) error
}
