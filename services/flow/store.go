package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"alliancewav/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StateStore persists in-progress booking flow state for the duration of a
// visitor session. Load returns (nil, nil) when no state exists for the key;
// a stored payload that no longer parses is discarded the same way rather
// than partially applied.
type StateStore interface {
	Save(ctx context.Context, flowID string, state models.BookingState) error
	Load(ctx context.Context, flowID string) (*models.BookingState, error)
	Clear(ctx context.Context, flowID string) error
}

// RedisStateStore keeps flow state in Redis with a session TTL.
type RedisStateStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStateStore{Client: client, TTL: ttl}
}

func (s *RedisStateStore) key(flowID string) string {
	return "bookingState:" + flowID
}

func (s *RedisStateStore) Save(ctx context.Context, flowID string, state models.BookingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking state: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(flowID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Load(ctx context.Context, flowID string) (*models.BookingState, error) {
	data, err := s.Client.Get(ctx, s.key(flowID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking state: %w", err)
	}
	var state models.BookingState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		zap.L().Warn("Discarding unparseable booking state", zap.String("flowId", flowID), zap.Error(err))
		return nil, nil
	}
	return &state, nil
}

func (s *RedisStateStore) Clear(ctx context.Context, flowID string) error {
	if err := s.Client.Del(ctx, s.key(flowID)).Err(); err != nil {
		return fmt.Errorf("failed to clear booking state: %w", err)
	}
	return nil
}

// MemoryStateStore is a process-local StateStore for tests and single-node
// development runs.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string][]byte)}
}

func (s *MemoryStateStore) Save(ctx context.Context, flowID string, state models.BookingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking state: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[flowID] = data
	return nil
}

func (s *MemoryStateStore) Load(ctx context.Context, flowID string) (*models.BookingState, error) {
	s.mu.Lock()
	data, ok := s.states[flowID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var state models.BookingState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

func (s *MemoryStateStore) Clear(ctx context.Context, flowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, flowID)
	return nil
}
