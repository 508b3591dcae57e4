package user

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

const (
	pairClause        = "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"
	friendshipClause  = "(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)"
	consumeRequestSQL = "id = ? AND status = ?"
)

type FriendRepository interface {
	CreateFriendRequest(ctx context.Context, req *database.FriendRequest) error
	GetFriendRequest(ctx context.Context, requestID uint64) (*database.FriendRequest, error)
	// FindPendingBetween looks in both directions and returns nil when there is none.
	FindPendingBetween(ctx context.Context, userID, otherID uint64) (*database.FriendRequest, error)
	ListIncomingRequests(ctx context.Context, userID uint64) ([]*database.FriendRequest, error)
	ListOutgoingRequests(ctx context.Context, userID uint64) ([]*database.FriendRequest, error)
	// AcceptFriendRequest consumes the pending row and creates the friendship
	// in one transaction.
	AcceptFriendRequest(ctx context.Context, req *database.FriendRequest) (*database.Friendship, error)
	RejectFriendRequest(ctx context.Context, requestID uint64) error
	CheckFriendshipExists(ctx context.Context, userID, friendID uint64) (bool, error)
	ListFriendIDs(ctx context.Context, userID uint64) ([]uint64, error)
	RemoveFriendship(ctx context.Context, userID, friendID uint64) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateFriendRequest(ctx context.Context, req *database.FriendRequest) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(req).Error, "create friend request")
}

func (r *friendRepository) GetFriendRequest(ctx context.Context, requestID uint64) (*database.FriendRequest, error) {
	var req database.FriendRequest
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *friendRepository) FindPendingBetween(ctx context.Context, userID, otherID uint64) (*database.FriendRequest, error) {
	var reqs []*database.FriendRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", database.StatusPending).
		Where(pairClause, userID, otherID, otherID, userID).
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, errors.Wrap(err, "find pending friend request")
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return reqs[0], nil
}

func (r *friendRepository) ListIncomingRequests(ctx context.Context, userID uint64) ([]*database.FriendRequest, error) {
	var reqs []*database.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, database.StatusPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, errors.Wrap(err, "list incoming friend requests")
}

func (r *friendRepository) ListOutgoingRequests(ctx context.Context, userID uint64) ([]*database.FriendRequest, error) {
	var reqs []*database.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, database.StatusPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, errors.Wrap(err, "list outgoing friend requests")
}

func (r *friendRepository) AcceptFriendRequest(ctx context.Context, req *database.FriendRequest) (*database.Friendship, error) {
	var friendship *database.Friendship
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(consumeRequestSQL, req.ID, database.StatusPending).Delete(&database.FriendRequest{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "consume friend request")
		}
		if res.RowsAffected == 0 {
			return database.ErrStaleRow
		}

		var count int64
		if err := tx.Model(&database.Friendship{}).
			Where(friendshipClause, req.SenderID, req.ReceiverID, req.ReceiverID, req.SenderID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "check friendship")
		}
		if count > 0 {
			return database.ErrRelationExists
		}

		friendship = &database.Friendship{UserID: req.SenderID, FriendID: req.ReceiverID}
		return errors.Wrap(tx.Create(friendship).Error, "create friendship")
	})
	if err != nil {
		return nil, err
	}
	return friendship, nil
}

func (r *friendRepository) RejectFriendRequest(ctx context.Context, requestID uint64) error {
	res := r.db.WithContext(ctx).Where(consumeRequestSQL, requestID, database.StatusPending).Delete(&database.FriendRequest{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "reject friend request")
	}
	if res.RowsAffected == 0 {
		return database.ErrStaleRow
	}
	return nil
}

func (r *friendRepository) CheckFriendshipExists(ctx context.Context, userID, friendID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&database.Friendship{}).
		Where(friendshipClause, userID, friendID, friendID, userID).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check friendship")
}

func (r *friendRepository) ListFriendIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var rows []database.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list friendships")
	}

	ids := make([]uint64, 0, len(rows))
	for _, f := range rows {
		if f.UserID == userID {
			ids = append(ids, f.FriendID)
		} else {
			ids = append(ids, f.UserID)
		}
	}
	return ids, nil
}

func (r *friendRepository) RemoveFriendship(ctx context.Context, userID, friendID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where(friendshipClause, userID, friendID, friendID, userID).
		Delete(&database.Friendship{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "remove friendship")
	}
	return res.RowsAffected > 0, nil
}
