package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

// Notifier is satisfied by *realtime.Notifier.
type Notifier interface {
	Notify(userID uint64, event string, data interface{})
}

type PresenceReader interface {
	OnlineAmong(ctx context.Context, userIDs []uint64) (map[uint64]bool, error)
}

type FriendView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

type RequestView struct {
	ID           uint64    `json:"id"`
	SenderID     uint64    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   uint64    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type FriendService interface {
	SendFriendRequest(ctx context.Context, senderID uint64, receiverUsername string) (*database.FriendRequest, error)
	AcceptFriendRequest(ctx context.Context, userID, requestID uint64) (*database.Friendship, error)
	RejectFriendRequest(ctx context.Context, userID, requestID uint64) error
	RemoveFriend(ctx context.Context, userID, friendID uint64) error
	ListFriends(ctx context.Context, userID uint64) ([]FriendView, error)
	ListIncomingRequests(ctx context.Context, userID uint64) ([]RequestView, error)
	ListOutgoingRequests(ctx context.Context, userID uint64) ([]RequestView, error)
}

type friendService struct {
	userRepo   UserRepository
	friendRepo FriendRepository
	notifier   Notifier
	presence   PresenceReader
	locks      *common.KeyedMutex
	log        *slog.Logger
}

func NewFriendService(userRepo UserRepository, friendRepo FriendRepository, notifier Notifier, presence PresenceReader, locks *common.KeyedMutex, log *slog.Logger) FriendService {
	return &friendService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
		notifier:   notifier,
		presence:   presence,
		locks:      locks,
		log:        log.With("component", "friends"),
	}
}

func (s *friendService) SendFriendRequest(ctx context.Context, senderID uint64, receiverUsername string) (*database.FriendRequest, error) {
	receiverUsername = strings.TrimSpace(receiverUsername)
	if receiverUsername == "" {
		return nil, apperr.Validation("username is required")
	}

	sender, err := loadUser(ctx, s.userRepo, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.userRepo.GetUserByUsername(ctx, receiverUsername)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	if receiver.ID == sender.ID {
		return nil, apperr.Validation("cannot send a friend request to yourself")
	}

	unlock := s.locks.Lock(common.PairKey("friend", sender.ID, receiver.ID))
	defer unlock()

	friends, err := s.friendRepo.CheckFriendshipExists(ctx, sender.ID, receiver.ID)
	if err != nil {
		return nil, apperr.Internal("check friendship", err)
	}
	if friends {
		return nil, apperr.Conflict(apperr.ReasonAlreadyFriends, "already friends")
	}

	pending, err := s.friendRepo.FindPendingBetween(ctx, sender.ID, receiver.ID)
	if err != nil {
		return nil, apperr.Internal("find pending request", err)
	}
	if pending != nil {
		return nil, apperr.Conflict(apperr.ReasonRequestPending, "a friend request between you is already pending")
	}

	req := &database.FriendRequest{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     database.StatusPending,
	}
	if err := s.friendRepo.CreateFriendRequest(ctx, req); err != nil {
		return nil, apperr.Internal("create friend request", err)
	}

	s.notifier.Notify(receiver.ID, realtime.EventFriendRequest, realtime.FriendRequestEvent{
		SenderID:   sender.ID,
		SenderName: sender.Username,
	})
	return req, nil
}

func (s *friendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint64) (*database.Friendship, error) {
	unlock := s.locks.Lock(fmt.Sprintf("friend-request:%d", requestID))
	defer unlock()

	req, err := s.pendingRequestFor(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	friendship, err := s.friendRepo.AcceptFriendRequest(ctx, req)
	switch {
	case errors.Is(err, database.ErrStaleRow):
		return nil, apperr.Conflict(apperr.ReasonStaleInvitation, "friend request is no longer pending")
	case errors.Is(err, database.ErrRelationExists):
		return nil, apperr.Conflict(apperr.ReasonAlreadyFriends, "already friends")
	case err != nil:
		return nil, apperr.Internal("accept friend request", err)
	}

	s.notifyResolved(ctx, req.SenderID, userID, realtime.EventFriendAccepted)
	return friendship, nil
}

func (s *friendService) RejectFriendRequest(ctx context.Context, userID, requestID uint64) error {
	unlock := s.locks.Lock(fmt.Sprintf("friend-request:%d", requestID))
	defer unlock()

	req, err := s.pendingRequestFor(ctx, userID, requestID)
	if err != nil {
		return err
	}

	err = s.friendRepo.RejectFriendRequest(ctx, req.ID)
	if errors.Is(err, database.ErrStaleRow) {
		return apperr.Conflict(apperr.ReasonStaleInvitation, "friend request is no longer pending")
	}
	if err != nil {
		return apperr.Internal("reject friend request", err)
	}

	s.notifyResolved(ctx, req.SenderID, userID, realtime.EventFriendRejected)
	return nil
}

func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uint64) error {
	if userID == friendID {
		return apperr.Validation("cannot remove yourself")
	}

	unlock := s.locks.Lock(common.PairKey("friend", userID, friendID))
	defer unlock()

	removed, err := s.friendRepo.RemoveFriendship(ctx, userID, friendID)
	if err != nil {
		return apperr.Internal("remove friendship", err)
	}
	if !removed {
		return apperr.NotFound("friendship not found")
	}

	s.notifier.Notify(friendID, realtime.EventFriendRemoved, realtime.FriendRemovedEvent{UserID: userID})
	return nil
}

func (s *friendService) ListFriends(ctx context.Context, userID uint64) ([]FriendView, error) {
	ids, err := s.friendRepo.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list friends", err)
	}
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("load friends", err)
	}

	online, err := s.presence.OnlineAmong(ctx, ids)
	if err != nil {
		// presence is decoration; the list is still correct without it
		s.log.Warn("presence lookup failed", "user_id", userID, "error", err)
		online = map[uint64]bool{}
	}

	out := make([]FriendView, 0, len(users))
	for _, u := range users {
		out = append(out, FriendView{ID: u.ID, Username: u.Username, Online: online[u.ID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *friendService) ListIncomingRequests(ctx context.Context, userID uint64) ([]RequestView, error) {
	reqs, err := s.friendRepo.ListIncomingRequests(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list incoming requests", err)
	}
	return s.requestViews(ctx, reqs)
}

func (s *friendService) ListOutgoingRequests(ctx context.Context, userID uint64) ([]RequestView, error) {
	reqs, err := s.friendRepo.ListOutgoingRequests(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list outgoing requests", err)
	}
	return s.requestViews(ctx, reqs)
}

// pendingRequestFor loads a request only its receiver may resolve. Anyone
// else gets not found so request ids do not leak.
func (s *friendService) pendingRequestFor(ctx context.Context, userID, requestID uint64) (*database.FriendRequest, error) {
	req, err := s.friendRepo.GetFriendRequest(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("friend request not found")
	}
	if err != nil {
		return nil, apperr.Internal("load friend request", err)
	}
	if req.ReceiverID != userID {
		return nil, apperr.NotFound("friend request not found")
	}
	if req.Status != database.StatusPending {
		return nil, apperr.Conflict(apperr.ReasonStaleInvitation, "friend request is no longer pending")
	}
	return req, nil
}

func (s *friendService) notifyResolved(ctx context.Context, senderID, resolverID uint64, event string) {
	resolver, err := s.userRepo.GetUserByID(ctx, resolverID)
	if err != nil {
		s.log.Warn("cannot load resolver for notification", "user_id", resolverID, "error", err)
		return
	}
	s.notifier.Notify(senderID, event, realtime.FriendResolvedEvent{UserID: resolver.ID, Username: resolver.Username})
}

func (s *friendService) requestViews(ctx context.Context, reqs []*database.FriendRequest) ([]RequestView, error) {
	names, err := usernames(ctx, s.userRepo, reqs)
	if err != nil {
		return nil, err
	}
	out := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, RequestView{
			ID:           r.ID,
			SenderID:     r.SenderID,
			SenderName:   names[r.SenderID],
			ReceiverID:   r.ReceiverID,
			ReceiverName: names[r.ReceiverID],
			Status:       r.Status,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, nil
}

func usernames(ctx context.Context, repo UserRepository, reqs []*database.FriendRequest) (map[uint64]string, error) {
	seen := map[uint64]bool{}
	var ids []uint64
	for _, r := range reqs {
		for _, id := range []uint64{r.SenderID, r.ReceiverID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	users, err := repo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("load users", err)
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}
