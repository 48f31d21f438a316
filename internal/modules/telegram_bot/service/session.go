package service

import (
	"sync"

	"backtest_bot/internal/models"
)

// sessionStore — per-chat сессии. Мутации только через with, чтобы фазовые
// переходы из горутин сетевых вызовов не гонялись между собой.
type sessionStore struct {
	mu sync.Mutex
	m  map[int64]*models.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]*models.Session)}
}

func (s *sessionStore) with(chatID int64, fn func(sess *models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[chatID]
	if !ok {
		sess = models.NewSession(chatID)
		s.m[chatID] = sess
	}
	fn(sess)
}

// reset выбрасывает сессию чата целиком — биржи, символы и последний
// результат начинаются заново.
func (s *sessionStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
