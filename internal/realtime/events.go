package realtime

import "time"

// Event names pushed to clients as {"event": name, "data": payload}.
const (
	EventFriendRequest          = "friend_request"
	EventFriendAccepted         = "friend_accepted"
	EventFriendRejected         = "friend_rejected"
	EventFriendRemoved          = "friend_removed"
	EventGameInvitation         = "game_invitation"
	EventGameInvitationAccepted = "game_invitation_accepted"
	EventGameInvitationRejected = "game_invitation_rejected"
	EventGameMove               = "game_move"
	EventChatMessage            = "chat_message"
)

// Envelope is the wire frame for every server-pushed event.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type FriendRequestEvent struct {
	SenderID   uint64 `json:"senderId"`
	SenderName string `json:"senderName"`
}

// FriendResolvedEvent is sent on friend_accepted and friend_rejected, and on
// game_invitation_rejected. It names the user who resolved the request.
type FriendResolvedEvent struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
}

type FriendRemovedEvent struct {
	UserID uint64 `json:"userId"`
}

type GameInvitationEvent struct {
	SenderID   uint64 `json:"senderId"`
	SenderName string `json:"senderName"`
}

type GameInvitationAcceptedEvent struct {
	GameID           uint64 `json:"gameId"`
	OpponentUsername string `json:"opponentUsername"`
}

type GameMoveEvent struct {
	GameID           uint64 `json:"gameId"`
	OpponentUsername string `json:"opponentUsername"`
}

type ChatMessagePayload struct {
	ID             uint64    `json:"id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	SenderUsername string    `json:"senderUsername"`
	IsMine         bool      `json:"isMine"`
}

type ChatMessageEvent struct {
	GameID  uint64             `json:"gameId"`
	Message ChatMessagePayload `json:"message"`
}
