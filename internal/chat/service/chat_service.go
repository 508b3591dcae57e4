package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/repository"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

// MaxMessageLength is measured in characters, not bytes.
const MaxMessageLength = 2000

type MatchReader interface {
	GetMatch(ctx context.Context, matchID uint64) (*database.Match, error)
}

type UserLookup interface {
	GetUsersByIDs(ctx context.Context, userIDs []uint64) ([]*database.User, error)
}

type Notifier interface {
	Notify(userID uint64, event string, data interface{})
}

//go:generate mockgen -source=chat_service.go -destination=mocks/mock_chat_service.go -package=mocks

// ChatService is the per-match chat channel.
type ChatService interface {
	GetOrCreate(ctx context.Context, matchID, userID uint64) (*database.Chat, error)
	// History returns the chat, creating it if needed, with its messages oldest first.
	History(ctx context.Context, matchID, userID uint64) (*database.Chat, []realtime.ChatMessagePayload, error)
	PostMessage(ctx context.Context, matchID, senderID uint64, content string) (*realtime.ChatMessagePayload, error)
	Teardown(ctx context.Context, matchID uint64) error
}

type chatService struct {
	repo     repository.ChatRepository
	matches  MatchReader
	users    UserLookup
	notifier Notifier
	locks    *common.KeyedMutex
	log      *slog.Logger
}

func NewChatService(repo repository.ChatRepository, matches MatchReader, users UserLookup, notifier Notifier, locks *common.KeyedMutex, log *slog.Logger) ChatService {
	return &chatService{
		repo:     repo,
		matches:  matches,
		users:    users,
		notifier: notifier,
		locks:    locks,
		log:      log.With("component", "chat"),
	}
}

func chatLockKey(matchID uint64) string {
	return fmt.Sprintf("chat:%d", matchID)
}

func (s *chatService) GetOrCreate(ctx context.Context, matchID, userID uint64) (*database.Chat, error) {
	unlock := s.locks.Lock(chatLockKey(matchID))
	defer unlock()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasPlayer(userID) {
		return nil, apperr.NotFound("match not found")
	}
	return s.ensureChat(ctx, m)
}

func (s *chatService) History(ctx context.Context, matchID, userID uint64) (*database.Chat, []realtime.ChatMessagePayload, error) {
	chat, err := s.GetOrCreate(ctx, matchID, userID)
	if err != nil {
		return nil, nil, err
	}
	messages, err := s.repo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, nil, apperr.Internal("list chat messages", err)
	}
	names, err := s.names(ctx, chat.User1ID, chat.User2ID)
	if err != nil {
		return nil, nil, err
	}

	out := make([]realtime.ChatMessagePayload, 0, len(messages))
	for _, msg := range messages {
		out = append(out, payload(msg, names[msg.SenderID], msg.SenderID == userID))
	}
	return chat, out, nil
}

func (s *chatService) PostMessage(ctx context.Context, matchID, senderID uint64, content string) (*realtime.ChatMessagePayload, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("message content cannot be empty")
	}
	content = truncate(content, MaxMessageLength)

	unlock := s.locks.Lock(chatLockKey(matchID))
	defer unlock()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasPlayer(senderID) {
		return nil, apperr.NotFound("match not found")
	}
	if m.Status != database.MatchActive {
		return nil, apperr.Conflict(apperr.ReasonChatClosed, "chat is closed, the match is over")
	}

	chat, err := s.ensureChat(ctx, m)
	if err != nil {
		return nil, err
	}
	msg := &database.ChatMessage{ChatID: chat.ID, SenderID: senderID, Content: content}
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, apperr.Internal("save chat message", err)
	}

	names, err := s.names(ctx, m.PlayerXID, m.PlayerOID)
	if err != nil {
		return nil, err
	}
	mine := payload(msg, names[senderID], true)
	theirs := payload(msg, names[senderID], false)
	s.notifier.Notify(senderID, realtime.EventChatMessage, realtime.ChatMessageEvent{GameID: m.ID, Message: mine})
	s.notifier.Notify(m.Opponent(senderID), realtime.EventChatMessage, realtime.ChatMessageEvent{GameID: m.ID, Message: theirs})
	return &mine, nil
}

func (s *chatService) Teardown(ctx context.Context, matchID uint64) error {
	unlock := s.locks.Lock(chatLockKey(matchID))
	defer unlock()

	if err := s.repo.DeleteForMatch(ctx, matchID); err != nil {
		return apperr.Internal("tear down chat", err)
	}
	return nil
}

// ensureChat expects the caller to hold the chat lock for m.
func (s *chatService) ensureChat(ctx context.Context, m *database.Match) (*database.Chat, error) {
	if m.IsTerminal() {
		// a teardown that failed when the match ended is retried here
		if err := s.repo.DeleteForMatch(ctx, m.ID); err != nil {
			s.log.Warn("chat teardown retry failed", "match_id", m.ID, "error", err)
		}
		return nil, apperr.Conflict(apperr.ReasonChatClosed, "chat is closed, the match is over")
	}

	chat, err := s.repo.GetByMatch(ctx, m.ID)
	if err != nil {
		return nil, apperr.Internal("load chat", err)
	}
	if chat != nil {
		return chat, nil
	}

	chat, err = s.repo.CreateForMatch(ctx, m)
	if errors.Is(err, database.ErrStaleRow) {
		return nil, apperr.Conflict(apperr.ReasonChatClosed, "chat is closed, the match is over")
	}
	if err != nil {
		return nil, apperr.Internal("create chat", err)
	}
	return chat, nil
}

func (s *chatService) loadMatch(ctx context.Context, matchID uint64) (*database.Match, error) {
	m, err := s.matches.GetMatch(ctx, matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("match not found")
	}
	if err != nil {
		return nil, apperr.Internal("load match", err)
	}
	return m, nil
}

func (s *chatService) names(ctx context.Context, ids ...uint64) (map[uint64]string, error) {
	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("load chat participants", err)
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

func payload(msg *database.ChatMessage, sender string, mine bool) realtime.ChatMessagePayload {
	return realtime.ChatMessagePayload{
		ID:             msg.ID,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
		SenderUsername: sender,
		IsMine:         mine,
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
