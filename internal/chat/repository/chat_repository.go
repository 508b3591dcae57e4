package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

type ChatRepository interface {
	// GetByMatch returns nil when the match has no chat yet.
	GetByMatch(ctx context.Context, matchID uint64) (*database.Chat, error)
	// CreateForMatch inserts the chat and binds it to the match in one
	// transaction. It fails with database.ErrStaleRow when the match is no
	// longer ACTIVE or already has a chat.
	CreateForMatch(ctx context.Context, m *database.Match) (*database.Chat, error)
	SaveMessage(ctx context.Context, msg *database.ChatMessage) error
	ListMessages(ctx context.Context, chatID uint64) ([]*database.ChatMessage, error)
	// DeleteForMatch removes the messages, the chat row and the match's
	// reference to it. Deleting a chat that does not exist is not an error.
	DeleteForMatch(ctx context.Context, matchID uint64) error
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) GetByMatch(ctx context.Context, matchID uint64) (*database.Chat, error) {
	var chats []*database.Chat
	if err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Limit(1).Find(&chats).Error; err != nil {
		return nil, errors.Wrap(err, "find chat")
	}
	if len(chats) == 0 {
		return nil, nil
	}
	return chats[0], nil
}

func (r *chatRepo) CreateForMatch(ctx context.Context, m *database.Match) (*database.Chat, error) {
	chat := &database.Chat{MatchID: m.ID, User1ID: m.PlayerXID, User2ID: m.PlayerOID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return errors.Wrap(err, "create chat")
		}
		res := tx.Model(&database.Match{}).
			Where("id = ? AND status = ? AND chat_id IS NULL", m.ID, database.MatchActive).
			Update("chat_id", chat.ID)
		if res.Error != nil {
			return errors.Wrap(res.Error, "bind chat to match")
		}
		if res.RowsAffected == 0 {
			return database.ErrStaleRow
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *chatRepo) SaveMessage(ctx context.Context, msg *database.ChatMessage) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(msg).Error, "save chat message")
}

func (r *chatRepo) ListMessages(ctx context.Context, chatID uint64) ([]*database.ChatMessage, error) {
	var messages []*database.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, errors.Wrap(err, "list chat messages")
}

func (r *chatRepo) DeleteForMatch(ctx context.Context, matchID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chatIDs := tx.Model(&database.Chat{}).Select("id").Where("match_id = ?", matchID)
		if err := tx.Where("chat_id IN (?)", chatIDs).Delete(&database.ChatMessage{}).Error; err != nil {
			return errors.Wrap(err, "delete chat messages")
		}
		if err := tx.Where("match_id = ?", matchID).Delete(&database.Chat{}).Error; err != nil {
			return errors.Wrap(err, "delete chat")
		}
		err := tx.Model(&database.Match{}).Where("id = ?", matchID).Update("chat_id", nil).Error
		return errors.Wrap(err, "unbind chat")
	})
}
