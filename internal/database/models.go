package database

import (
	"errors"
	"time"
)

// Invitation statuses. Resolved invitations are deleted, so stored rows are
// always PENDING; the other values only travel in API payloads.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

const (
	MatchActive   = "ACTIVE"
	MatchFinished = "FINISHED"
	MatchDraw     = "DRAW"
)

const EmptyBoard = "---------"

var (
	// ErrStaleRow is returned when a conditional write matched no row because
	// a concurrent writer got there first.
	ErrStaleRow = errors.New("row changed concurrently")
	// ErrRelationExists is returned when the relationship an invitation would
	// create is already in place.
	ErrRelationExists = errors.New("relationship already exists")
)

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"column:email;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

type FriendRequest struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Status     string    `gorm:"column:status;size:16;not null;default:PENDING" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Friendship stores one directed row per undirected edge.
type Friendship struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_friend_pair" json:"user_id"`
	FriendID  uint64    `gorm:"column:friend_id;not null;uniqueIndex:idx_friend_pair;index" json:"friend_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type GameInvitation struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Status     string    `gorm:"column:status;size:16;not null;default:PENDING" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Match is a single tic-tac-toe game. Board holds nine cells over '-', 'X', 'O'.
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerXID uint64    `gorm:"column:player_x_id;not null;index" json:"player_x_id"`
	PlayerOID uint64    `gorm:"column:player_o_id;not null;index" json:"player_o_id"`
	ChatID    *uint64   `gorm:"column:chat_id" json:"chat_id,omitempty"`
	Board     string    `gorm:"column:board;size:9;not null" json:"board"`
	Turn      string    `gorm:"column:turn;size:1;not null" json:"turn"`
	Status    string    `gorm:"column:status;size:16;not null;index" json:"status"`
	WinnerID  *uint64   `gorm:"column:winner_id" json:"winner_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m *Match) HasPlayer(userID uint64) bool {
	return m.PlayerXID == userID || m.PlayerOID == userID
}

// Opponent returns the other player, or 0 when userID is not a player.
func (m *Match) Opponent(userID uint64) uint64 {
	switch userID {
	case m.PlayerXID:
		return m.PlayerOID
	case m.PlayerOID:
		return m.PlayerXID
	}
	return 0
}

func (m *Match) IsTerminal() bool {
	return m.Status == MatchFinished || m.Status == MatchDraw
}

type Chat struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID   uint64    `gorm:"column:match_id;not null;uniqueIndex" json:"match_id"`
	User1ID   uint64    `gorm:"column:user1_id;not null" json:"user1_id"`
	User2ID   uint64    `gorm:"column:user2_id;not null" json:"user2_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID    uint64    `gorm:"column:chat_id;not null;index" json:"chat_id"`
	SenderID  uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

// Models lists every table owned by this service, in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&FriendRequest{},
		&Friendship{},
		&GameInvitation{},
		&Match{},
		&Chat{},
		&ChatMessage{},
	}
}
