package middleware

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AttemptStore считает попытки ввода кода по идентификатору (IP) в окне
// фиксированной длины. Реализует echo middleware.RateLimiterStore.
type AttemptStore struct {
	cache  *cache.Cache
	limit  int
	window time.Duration
}

func NewAttemptStore(limit int, window time.Duration) *AttemptStore {
	return &AttemptStore{
		cache:  cache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

func (s *AttemptStore) Allow(identifier string) (bool, error) {
	if s.limit <= 0 {
		return true, nil
	}

	if err := s.cache.Add(identifier, 1, s.window); err == nil {
		return true, nil
	}

	n, err := s.cache.IncrementInt(identifier, 1)
	if err != nil {
		// запись истекла между Add и IncrementInt, начинаем новое окно
		s.cache.Set(identifier, 1, s.window)
		return true, nil
	}

	return n <= s.limit, nil
}
