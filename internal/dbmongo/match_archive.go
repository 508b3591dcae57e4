package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const archiveCollection = "finished_matches"

// MatchRecord is the archived snapshot of a match that reached FINISHED or DRAW.
type MatchRecord struct {
	MatchID     uint64    `bson:"match_id" json:"matchId"`
	PlayerX     uint64    `bson:"player_x" json:"playerX"`
	PlayerO     uint64    `bson:"player_o" json:"playerO"`
	PlayerXName string    `bson:"player_x_name" json:"playerXName"`
	PlayerOName string    `bson:"player_o_name" json:"playerOName"`
	Players     []uint64  `bson:"players" json:"-"`
	Board       string    `bson:"board" json:"board"`
	Status      string    `bson:"status" json:"status"`
	WinnerID    *uint64   `bson:"winner_id,omitempty" json:"winnerId,omitempty"`
	Moves       int       `bson:"moves" json:"moves"`
	StartedAt   time.Time `bson:"started_at" json:"startedAt"`
	FinishedAt  time.Time `bson:"finished_at" json:"finishedAt"`
}

type MatchArchive struct {
	collection *mongo.Collection
}

func NewMatchArchive(mc *MongoClient) *MatchArchive {
	return &MatchArchive{collection: mc.Database.Collection(archiveCollection)}
}

// EnsureIndexes creates the lookup index used by History. Safe to call repeatedly.
func (a *MatchArchive) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "players", Value: 1}, {Key: "finished_at", Value: -1}}},
		{Keys: bson.D{{Key: "match_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create archive indexes: %w", err)
	}
	return nil
}

// Archive stores rec. Archiving the same match twice keeps the first record.
func (a *MatchArchive) Archive(ctx context.Context, rec *MatchRecord) error {
	rec.Players = []uint64{rec.PlayerX, rec.PlayerO}
	_, err := a.collection.UpdateOne(ctx,
		bson.M{"match_id": rec.MatchID},
		bson.M{"$setOnInsert": rec},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("archive match %d: %w", rec.MatchID, err)
	}
	return nil
}

// History returns the user's archived matches, newest first.
func (a *MatchArchive) History(ctx context.Context, userID uint64, limit int64) ([]*MatchRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "finished_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := a.collection.Find(ctx, bson.M{"players": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find archived matches: %w", err)
	}
	defer cur.Close(ctx)

	var out []*MatchRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode archived matches: %w", err)
	}
	return out, nil
}
