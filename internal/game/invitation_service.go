package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

type FriendshipChecker interface {
	CheckFriendshipExists(ctx context.Context, userID, friendID uint64) (bool, error)
}

type InvitationView struct {
	ID           uint64    `json:"id"`
	SenderID     uint64    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   uint64    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InvitationService interface {
	SendInvitation(ctx context.Context, senderID, receiverID uint64) (*database.GameInvitation, error)
	AcceptInvitation(ctx context.Context, userID, invitationID uint64) (*database.Match, error)
	RejectInvitation(ctx context.Context, userID, invitationID uint64) error
	ListIncoming(ctx context.Context, userID uint64) ([]InvitationView, error)
	ListOutgoing(ctx context.Context, userID uint64) ([]InvitationView, error)
}

type invitationService struct {
	invRepo   InvitationRepository
	matchRepo MatchRepository
	users     UserLookup
	friends   FriendshipChecker
	notifier  Notifier
	locks     *common.KeyedMutex
	log       *slog.Logger
}

func NewInvitationService(invRepo InvitationRepository, matchRepo MatchRepository, users UserLookup, friends FriendshipChecker, notifier Notifier, locks *common.KeyedMutex, log *slog.Logger) InvitationService {
	return &invitationService{
		invRepo:   invRepo,
		matchRepo: matchRepo,
		users:     users,
		friends:   friends,
		notifier:  notifier,
		locks:     locks,
		log:       log.With("component", "game-invitations"),
	}
}

func (s *invitationService) SendInvitation(ctx context.Context, senderID, receiverID uint64) (*database.GameInvitation, error) {
	if senderID == receiverID {
		return nil, apperr.Validation("cannot invite yourself")
	}
	sender, err := s.loadUser(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadUser(ctx, receiverID); err != nil {
		return nil, err
	}
	if err := s.requireFriends(ctx, senderID, receiverID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(common.PairKey("game", senderID, receiverID))
	defer unlock()

	pending, err := s.invRepo.FindPendingBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, apperr.Internal("find pending invitation", err)
	}
	if pending != nil {
		return nil, apperr.Conflict(apperr.ReasonRequestPending, "an invitation between you is already pending")
	}
	active, err := s.matchRepo.FindActiveBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, apperr.Internal("find active match", err)
	}
	if active != nil {
		return nil, apperr.Conflict(apperr.ReasonMatchInProgress, "a match between you is already in progress")
	}

	inv := &database.GameInvitation{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     database.StatusPending,
	}
	if err := s.invRepo.CreateInvitation(ctx, inv); err != nil {
		return nil, apperr.Internal("create game invitation", err)
	}

	s.notifier.Notify(receiverID, realtime.EventGameInvitation, realtime.GameInvitationEvent{
		SenderID:   sender.ID,
		SenderName: sender.Username,
	})
	return inv, nil
}

func (s *invitationService) AcceptInvitation(ctx context.Context, userID, invitationID uint64) (*database.Match, error) {
	unlock := s.locks.Lock(invitationLockKey(invitationID))
	defer unlock()

	inv, err := s.pendingInvitationFor(ctx, userID, invitationID)
	if err != nil {
		return nil, err
	}
	if err := s.requireFriends(ctx, inv.SenderID, inv.ReceiverID); err != nil {
		return nil, err
	}

	// Same lock as SendInvitation, so a new invitation for the pair cannot
	// slip in between the match-exists check and the insert.
	unlockPair := s.locks.Lock(common.PairKey("game", inv.SenderID, inv.ReceiverID))
	defer unlockPair()

	match, err := s.invRepo.AcceptInvitation(ctx, inv)
	switch {
	case errors.Is(err, database.ErrStaleRow):
		return nil, apperr.Conflict(apperr.ReasonStaleInvitation, "game invitation is no longer pending")
	case errors.Is(err, database.ErrRelationExists):
		return nil, apperr.Conflict(apperr.ReasonMatchInProgress, "a match between you is already in progress")
	case err != nil:
		return nil, apperr.Internal("accept game invitation", err)
	}

	receiver, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.log.Warn("cannot load receiver for notification", "user_id", userID, "error", err)
	} else {
		s.notifier.Notify(inv.SenderID, realtime.EventGameInvitationAccepted, realtime.GameInvitationAcceptedEvent{
			GameID:           match.ID,
			OpponentUsername: receiver.Username,
		})
	}
	s.log.Info("match started", "match_id", match.ID, "player_x", match.PlayerXID, "player_o", match.PlayerOID)
	return match, nil
}

func (s *invitationService) RejectInvitation(ctx context.Context, userID, invitationID uint64) error {
	unlock := s.locks.Lock(invitationLockKey(invitationID))
	defer unlock()

	inv, err := s.pendingInvitationFor(ctx, userID, invitationID)
	if err != nil {
		return err
	}

	err = s.invRepo.RejectInvitation(ctx, inv.ID)
	if errors.Is(err, database.ErrStaleRow) {
		return apperr.Conflict(apperr.ReasonStaleInvitation, "game invitation is no longer pending")
	}
	if err != nil {
		return apperr.Internal("reject game invitation", err)
	}

	receiver, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.log.Warn("cannot load receiver for notification", "user_id", userID, "error", err)
		return nil
	}
	s.notifier.Notify(inv.SenderID, realtime.EventGameInvitationRejected, realtime.FriendResolvedEvent{
		UserID:   receiver.ID,
		Username: receiver.Username,
	})
	return nil
}

func (s *invitationService) ListIncoming(ctx context.Context, userID uint64) ([]InvitationView, error) {
	invs, err := s.invRepo.ListIncoming(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list incoming invitations", err)
	}
	return s.views(ctx, invs)
}

func (s *invitationService) ListOutgoing(ctx context.Context, userID uint64) ([]InvitationView, error) {
	invs, err := s.invRepo.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list outgoing invitations", err)
	}
	return s.views(ctx, invs)
}

func (s *invitationService) loadUser(ctx context.Context, userID uint64) (*database.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal("load user", err)
	}
	return u, nil
}

func (s *invitationService) requireFriends(ctx context.Context, a, b uint64) error {
	ok, err := s.friends.CheckFriendshipExists(ctx, a, b)
	if err != nil {
		return apperr.Internal("check friendship", err)
	}
	if !ok {
		return apperr.Conflict(apperr.ReasonNotAFriend, "you can only play with friends")
	}
	return nil
}

// pendingInvitationFor hides invitations from everyone but their receiver.
func (s *invitationService) pendingInvitationFor(ctx context.Context, userID, invitationID uint64) (*database.GameInvitation, error) {
	inv, err := s.invRepo.GetInvitation(ctx, invitationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("game invitation not found")
	}
	if err != nil {
		return nil, apperr.Internal("load game invitation", err)
	}
	if inv.ReceiverID != userID {
		return nil, apperr.NotFound("game invitation not found")
	}
	if inv.Status != database.StatusPending {
		return nil, apperr.Conflict(apperr.ReasonStaleInvitation, "game invitation is no longer pending")
	}
	return inv, nil
}

func (s *invitationService) views(ctx context.Context, invs []*database.GameInvitation) ([]InvitationView, error) {
	var ids []uint64
	seen := map[uint64]bool{}
	for _, inv := range invs {
		for _, id := range []uint64{inv.SenderID, inv.ReceiverID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("load users", err)
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]InvitationView, 0, len(invs))
	for _, inv := range invs {
		out = append(out, InvitationView{
			ID:           inv.ID,
			SenderID:     inv.SenderID,
			SenderName:   names[inv.SenderID],
			ReceiverID:   inv.ReceiverID,
			ReceiverName: names[inv.ReceiverID],
			Status:       inv.Status,
			CreatedAt:    inv.CreatedAt,
		})
	}
	return out, nil
}

func invitationLockKey(id uint64) string {
	return fmt.Sprintf("game-invitation:%d", id)
}
