package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/example/qaforum/internal/models"
)

// MemoryStore is an in-memory Store used by tests and local
// development. It mirrors the ordering and uniqueness semantics of the
// gorm implementation.
type MemoryStore struct {
	mu           sync.Mutex
	users        []models.User
	questions    []models.Question
	answers      []models.Answer
	sessions     map[string]models.Session
	nextUser     uint
	nextQuestion uint
	nextAnswer   uint

	// Now supplies creation timestamps; tests may override it.
	Now func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		Now:      time.Now,
	}
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Phone == user.Phone {
			return ErrDuplicatePhone
		}
	}

	s.nextUser++
	user.ID = s.nextUser
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.Now()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) FindUserByPhone(phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Phone == phone {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteUser removes a user row. The gorm schema never deletes users;
// this exists so tests can exercise dangling-session resolution.
func (s *MemoryStore) DeleteUser(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, user := range s.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	s.users = kept
}

func (s *MemoryStore) CreateQuestion(question *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextQuestion++
	question.ID = s.nextQuestion
	if question.CreatedAt.IsZero() {
		question.CreatedAt = s.Now()
	}
	s.questions = append(s.questions, *question)
	return nil
}

func (s *MemoryStore) FindQuestionByID(id uint) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, question := range s.questions {
		if question.ID == id {
			found := question
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListQuestions(limit, offset int) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := sortedByRecency(s.questions)
	if limit <= 0 {
		return questions, nil
	}
	if offset >= len(questions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(questions) {
		end = len(questions)
	}
	return questions[offset:end], nil
}

func (s *MemoryStore) CountQuestions() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.questions)), nil
}

func (s *MemoryStore) SearchQuestions(term string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Question
	for _, question := range s.questions {
		if strings.Contains(question.Title, term) || strings.Contains(question.Content, term) {
			matched = append(matched, question)
		}
	}
	return sortedByRecency(matched), nil
}

func (s *MemoryStore) FindQuestionsByAuthor(userID uint) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Question
	for _, question := range s.questions {
		if question.AuthorID == userID {
			matched = append(matched, question)
		}
	}
	return sortedByRecency(matched), nil
}

func (s *MemoryStore) CreateAnswer(answer *models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAnswer++
	answer.ID = s.nextAnswer
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = s.Now()
	}
	s.answers = append(s.answers, *answer)
	return nil
}

func (s *MemoryStore) FindAnswersForQuestion(questionID uint) ([]models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Answer
	for _, answer := range s.answers {
		if answer.QuestionID == questionID {
			matched = append(matched, answer)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID > matched[j].ID
	})
	return matched, nil
}

func (s *MemoryStore) CountAnswers(questionID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, answer := range s.answers {
		if answer.QuestionID == questionID {
			total++
		}
	}
	return total, nil
}

func (s *MemoryStore) CreateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = *session
	return nil
}

func (s *MemoryStore) FindSession(token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemoryStore) TouchSession(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil
	}
	session.ExpiresAt = expiresAt
	s.sessions[token] = session
	return nil
}

func (s *MemoryStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) DeleteExpiredSessions(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(s.sessions, token)
		}
	}
	return nil
}

func sortedByRecency(questions []models.Question) []models.Question {
	sorted := make([]models.Question, len(questions))
	copy(sorted, questions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
