package game

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

const (
	consumeInvitationSQL = "id = ? AND status = ?"
	invitationPairClause = "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"
)

type InvitationRepository interface {
	CreateInvitation(ctx context.Context, inv *database.GameInvitation) error
	GetInvitation(ctx context.Context, invitationID uint64) (*database.GameInvitation, error)
	// FindPendingBetween looks in both directions and returns nil when there is none.
	FindPendingBetween(ctx context.Context, userID, otherID uint64) (*database.GameInvitation, error)
	ListIncoming(ctx context.Context, userID uint64) ([]*database.GameInvitation, error)
	ListOutgoing(ctx context.Context, userID uint64) ([]*database.GameInvitation, error)
	// AcceptInvitation consumes the pending row and creates the match in one
	// transaction. The sender plays X.
	AcceptInvitation(ctx context.Context, inv *database.GameInvitation) (*database.Match, error)
	RejectInvitation(ctx context.Context, invitationID uint64) error
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) CreateInvitation(ctx context.Context, inv *database.GameInvitation) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(inv).Error, "create game invitation")
}

func (r *invitationRepository) GetInvitation(ctx context.Context, invitationID uint64) (*database.GameInvitation, error) {
	var inv database.GameInvitation
	if err := r.db.WithContext(ctx).Where("id = ?", invitationID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) FindPendingBetween(ctx context.Context, userID, otherID uint64) (*database.GameInvitation, error) {
	var invs []*database.GameInvitation
	err := r.db.WithContext(ctx).
		Where("status = ?", database.StatusPending).
		Where(invitationPairClause, userID, otherID, otherID, userID).
		Limit(1).
		Find(&invs).Error
	if err != nil {
		return nil, errors.Wrap(err, "find pending invitation")
	}
	if len(invs) == 0 {
		return nil, nil
	}
	return invs[0], nil
}

func (r *invitationRepository) ListIncoming(ctx context.Context, userID uint64) ([]*database.GameInvitation, error) {
	var invs []*database.GameInvitation
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, database.StatusPending).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, errors.Wrap(err, "list incoming invitations")
}

func (r *invitationRepository) ListOutgoing(ctx context.Context, userID uint64) ([]*database.GameInvitation, error) {
	var invs []*database.GameInvitation
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, database.StatusPending).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, errors.Wrap(err, "list outgoing invitations")
}

func (r *invitationRepository) AcceptInvitation(ctx context.Context, inv *database.GameInvitation) (*database.Match, error) {
	var match *database.Match
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(consumeInvitationSQL, inv.ID, database.StatusPending).Delete(&database.GameInvitation{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "consume game invitation")
		}
		if res.RowsAffected == 0 {
			return database.ErrStaleRow
		}

		var active int64
		if err := tx.Model(&database.Match{}).
			Where(activePairClause, database.MatchActive, inv.SenderID, inv.ReceiverID, inv.ReceiverID, inv.SenderID).
			Count(&active).Error; err != nil {
			return errors.Wrap(err, "check active match")
		}
		if active > 0 {
			return database.ErrRelationExists
		}

		match = &database.Match{
			PlayerXID: inv.SenderID,
			PlayerOID: inv.ReceiverID,
			Board:     database.EmptyBoard,
			Turn:      X.String(),
			Status:    database.MatchActive,
		}
		return errors.Wrap(tx.Create(match).Error, "create match")
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *invitationRepository) RejectInvitation(ctx context.Context, invitationID uint64) error {
	res := r.db.WithContext(ctx).Where(consumeInvitationSQL, invitationID, database.StatusPending).Delete(&database.GameInvitation{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "reject game invitation")
	}
	if res.RowsAffected == 0 {
		return database.ErrStaleRow
	}
	return nil
}
