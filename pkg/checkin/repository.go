package checkin

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis"
)

const tokenKeyPrefix = "checkin:token:"

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenUsed     = errors.New("token already used")
	ErrTokenExpired  = errors.New("token expired")
)

// tokenRecord is the JSON document stored per issued token.
type tokenRecord struct {
	EventID string `json:"eventId"`
	Used    bool   `json:"used"`
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}

func NewRedisRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client: client}
}

// redisRepository stores tokens with Redis native per-key TTL. Consumption deletes the key
// outright, so a replayed token is indistinguishable from one that was never issued.
type redisRepository struct {
	client *redis.Client
}

func (r *redisRepository) CreateToken(token string, eventID string, ttl time.Duration) error {
	payload, err := json.Marshal(tokenRecord{EventID: eventID})
	if err != nil {
		return err
	}
	return r.client.Set(tokenKey(token), payload, ttl).Err()
}

func (r *redisRepository) ConsumeToken(token string) (string, error) {
	payload, err := r.client.Get(tokenKey(token)).Result()
	if err == redis.Nil {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}

	var record tokenRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return "", err
	}
	if record.Used {
		return "", ErrTokenUsed
	}

	// read-then-delete is not atomic; two racing validations of the same token is an accepted
	// limitation of the remote store path
	if err := r.client.Del(tokenKey(token)).Err(); err != nil {
		return "", err
	}

	return record.EventID, nil
}

func NewInMemoryRepository() *inMemoryRepository {
	return &inMemoryRepository{tokens: make(map[string]*memoryToken)}
}

// inMemoryRepository backs token issuance when Redis is unconfigured. Intended for local
// development only. Unlike the Redis repository it keeps consumed tokens around, flagged as used,
// so they can be inspected.
type inMemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]*memoryToken
}

type memoryToken struct {
	eventID   string
	used      bool
	expiresAt time.Time
}

func (m *inMemoryRepository) CreateToken(token string, eventID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = &memoryToken{eventID: eventID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *inMemoryRepository) ConsumeToken(token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.tokens[token]
	if !ok {
		return "", ErrTokenNotFound
	}
	if record.used {
		return "", ErrTokenUsed
	}
	if time.Now().After(record.expiresAt) {
		return "", ErrTokenExpired
	}

	record.used = true
	return record.eventID, nil
}
