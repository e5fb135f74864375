package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"
)

const (
	// DefaultMessageLimit is the page size when the caller does not specify one.
	DefaultMessageLimit = 50

	// pollWindow bounds how far back a poll looks. Polling is meant for short-interval re-polling,
	// so anything older than the most recent pollWindow messages is assumed to have been fetched
	// already.
	pollWindow = 100
)

// NewService returns the chat log service. chatRepository may be nil when the backing store is
// unconfigured; every operation then reports service unavailable. Unlike check-in there is no
// in-memory fallback.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, chatRepository repository) *chatService {
	return &chatService{
		logger:     logger,
		repository: chatRepository,
	}
}

type repository interface {
	AppendMessage(message Message) error
	ListMessages(clubID string, limit int64) ([]Message, error)
	UpdateMessage(clubID string, messageID string, update func(*Message)) (Message, error)
}

type chatService struct {
	logger     *slog.Logger
	repository repository
}

func (s *chatService) available() error {
	if s.repository == nil {
		return errdef.NewServiceUnavailable("chat store is not configured")
	}
	return nil
}

// GetMessages returns up to limit messages for the club, newest first.
func (s *chatService) GetMessages(ctx context.Context, clubID string, limit int) ([]Message, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(clubID) == "" {
		return nil, errdef.NewBadRequest("clubId is required")
	}
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	messages, err := s.repository.ListMessages(clubID, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing messages for club %q: %v", clubID, err)
	}
	return messages, nil
}

type SendMessageInput struct {
	ClubID     string
	UserID     string
	UserName   string
	UserAvatar string
	Message    string
	// ID and Timestamp are assigned by the service when unset.
	ID        string
	Timestamp int64
}

// SendMessage appends a message to the club's log. The message text is trimmed; id and timestamp
// are assigned when the caller did not set them.
func (s *chatService) SendMessage(ctx context.Context, input SendMessageInput) (Message, error) {
	if err := s.available(); err != nil {
		return Message{}, err
	}

	text := strings.TrimSpace(input.Message)
	if input.ClubID == "" || text == "" || input.UserID == "" || input.UserName == "" {
		return Message{}, errdef.NewBadRequest("clubId, message, userId and userName are required")
	}

	message := Message{
		ID:         input.ID,
		ClubID:     input.ClubID,
		UserID:     input.UserID,
		UserName:   input.UserName,
		UserAvatar: input.UserAvatar,
		Message:    text,
		Timestamp:  input.Timestamp,
	}
	if message.Timestamp == 0 {
		message.Timestamp = time.Now().UnixMilli()
	}
	if message.ID == "" {
		message.ID = newMessageID(message.Timestamp)
	}

	if err := s.repository.AppendMessage(message); err != nil {
		return Message{}, fmt.Errorf("error appending message to club %q: %v", input.ClubID, err)
	}

	s.logger.InfoContext(ctx, "Appended chat message", "clubId", input.ClubID, "messageId", message.ID)

	return message, nil
}

// PollMessages returns the messages newer than after, plus the timestamp of the newest message in
// the log (0 when the log is empty). Clients pass that timestamp back as the next cursor.
func (s *chatService) PollMessages(ctx context.Context, clubID string, after int64) ([]Message, int64, error) {
	if err := s.available(); err != nil {
		return nil, 0, err
	}
	if strings.TrimSpace(clubID) == "" {
		return nil, 0, errdef.NewBadRequest("clubId is required")
	}

	messages, err := s.repository.ListMessages(clubID, pollWindow)
	if err != nil {
		return nil, 0, fmt.Errorf("error polling messages for club %q: %v", clubID, err)
	}

	var latest int64
	if len(messages) > 0 {
		latest = messages[0].Timestamp
	}

	newer := make([]Message, 0, len(messages))
	for _, message := range messages {
		if message.Timestamp > after {
			newer = append(newer, message)
		}
	}

	return newer, latest, nil
}

// TogglePin flips the message's pin flag. Pinning is not exclusive; several messages of a club can
// be pinned at once.
func (s *chatService) TogglePin(ctx context.Context, clubID string, messageID string, userID string) (Message, error) {
	if err := s.available(); err != nil {
		return Message{}, err
	}
	if clubID == "" || messageID == "" || userID == "" {
		return Message{}, errdef.NewBadRequest("clubId, messageId and userId are required")
	}

	message, err := s.repository.UpdateMessage(clubID, messageID, func(m *Message) {
		m.Pinned = !m.Pinned
	})
	if err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			return Message{}, errdef.NewBadRequest("message %q not found in club %q", messageID, clubID)
		}
		return Message{}, fmt.Errorf("error toggling pin on message %q: %v", messageID, err)
	}

	s.logger.InfoContext(ctx, "Toggled pin", "clubId", clubID, "messageId", messageID, "userId", userID, "pinned", message.Pinned)

	return message, nil
}

// ToggleReaction adds the user's reaction with the given emoji, or removes it if it is already
// present. Invoking it twice with identical arguments restores the original state.
func (s *chatService) ToggleReaction(ctx context.Context, clubID string, messageID string, userID string, emoji string) (Message, error) {
	if err := s.available(); err != nil {
		return Message{}, err
	}
	if clubID == "" || messageID == "" || userID == "" || strings.TrimSpace(emoji) == "" {
		return Message{}, errdef.NewBadRequest("clubId, messageId, userId and emoji are required")
	}

	message, err := s.repository.UpdateMessage(clubID, messageID, func(m *Message) {
		toggleReaction(m, emoji, userID)
	})
	if err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			return Message{}, errdef.NewBadRequest("message %q not found in club %q", messageID, clubID)
		}
		return Message{}, fmt.Errorf("error toggling reaction on message %q: %v", messageID, err)
	}

	return message, nil
}

func toggleReaction(message *Message, emoji string, userID string) {
	users := message.Reactions[emoji]
	for i, user := range users {
		if user != userID {
			continue
		}

		users = append(users[:i], users[i+1:]...)
		if len(users) == 0 {
			delete(message.Reactions, emoji)
			if len(message.Reactions) == 0 {
				message.Reactions = nil
			}
		} else {
			message.Reactions[emoji] = users
		}
		return
	}

	if message.Reactions == nil {
		message.Reactions = make(map[string][]string)
	}
	message.Reactions[emoji] = append(users, userID)
}

// newMessageID composes a sortable id from the message timestamp and a fragment of a UUID.
func newMessageID(timestamp int64) string {
	return fmt.Sprintf("%d-%s", timestamp, uuid.NewString()[:8])
}
