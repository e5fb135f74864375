package chat

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis"
)

const (
	clubKeyPrefix = "chat:club:"

	// maxMessages caps each club's list; everything beyond the cap is silently dropped.
	maxMessages = 1000

	// listTTL is refreshed on every append, giving each club a 30 day rolling retention.
	listTTL = 30 * 24 * time.Hour
)

var ErrMessageNotFound = errors.New("message not found")

func clubKey(clubID string) string {
	return clubKeyPrefix + clubID
}

func NewRedisRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client: client}
}

// redisRepository stores each club's messages as a Redis list, newest first.
type redisRepository struct {
	client *redis.Client
}

// AppendMessage pushes the message to the head of the club's list, trims the list to maxMessages
// and refreshes the list's expiry. The three steps are not transactional; trim and expiry drift is
// self-healing since the next append re-applies both.
func (r *redisRepository) AppendMessage(message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	key := clubKey(message.ClubID)
	if err := r.client.LPush(key, payload).Err(); err != nil {
		return err
	}
	if err := r.client.LTrim(key, 0, maxMessages-1).Err(); err != nil {
		return err
	}
	return r.client.Expire(key, listTTL).Err()
}

func (r *redisRepository) ListMessages(clubID string, limit int64) ([]Message, error) {
	values, err := r.client.LRange(clubKey(clubID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(values))
	for _, value := range values {
		var message Message
		if err := json.Unmarshal([]byte(value), &message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// UpdateMessage finds the message by id, applies update and writes it back at the same list index.
// The read and the write are separate round-trips; a concurrent trim can shift indices, which is
// an accepted limitation of the store.
func (r *redisRepository) UpdateMessage(clubID string, messageID string, update func(*Message)) (Message, error) {
	key := clubKey(clubID)
	values, err := r.client.LRange(key, 0, maxMessages-1).Result()
	if err != nil {
		return Message{}, err
	}

	for i, value := range values {
		var message Message
		if err := json.Unmarshal([]byte(value), &message); err != nil {
			return Message{}, err
		}
		if message.ID != messageID {
			continue
		}

		update(&message)

		payload, err := json.Marshal(message)
		if err != nil {
			return Message{}, err
		}
		if err := r.client.LSet(key, int64(i), payload).Err(); err != nil {
			return Message{}, err
		}
		return message, nil
	}

	return Message{}, ErrMessageNotFound
}
