// datastore.go
// Persists finished games to Cloud Datastore, keyed by the referee's
// game ID.

package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
	"github.com/google/uuid"

	skrafl "github.com/halldorb/skrafl-engine"
)

// gameKind is the Datastore entity kind a finished game is stored
// under.
const gameKind = "Game"

// gameEntity is the Datastore-native shape of a skrafl.Result: nested
// structs of variable length (Moves, Players) do not round-trip
// through the default Datastore property mapping, so we flatten them
// to one set of scalar fields per player and keep only the length of
// the move log.
type gameEntity struct {
	GameID     string
	PlayerAID  string
	PlayerBID  string
	ScoreA     int
	ScoreB     int
	RackA      string
	RackB      string
	ExceptionA string
	ExceptionB string
	MoveCount  int
}

// Store wraps a Cloud Datastore client scoped to one project.
type Store struct {
	client *datastore.Client
}

// Open connects to Cloud Datastore for the given project.
func Open(ctx context.Context, projectID string) (*Store, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("opening datastore client: %w", err)
	}
	return &Store{client: client}, nil
}

// Close releases the underlying Datastore client.
func (s *Store) Close() error {
	return s.client.Close()
}

// SaveResult writes a finished game's result under its own UUID.
func (s *Store) SaveResult(ctx context.Context, res *skrafl.Result) error {
	key := datastore.NameKey(gameKind, res.ID.String(), nil)
	ent := &gameEntity{
		GameID:     res.ID.String(),
		PlayerAID:  res.Players[0].ID,
		PlayerBID:  res.Players[1].ID,
		ScoreA:     res.Players[0].Score,
		ScoreB:     res.Players[1].Score,
		RackA:      res.Players[0].Rack,
		RackB:      res.Players[1].Rack,
		ExceptionA: res.Players[0].Exception,
		ExceptionB: res.Players[1].Exception,
		MoveCount:  len(res.Moves),
	}
	if _, err := s.client.Put(ctx, key, ent); err != nil {
		return fmt.Errorf("saving game %s: %w", res.ID, err)
	}
	return nil
}

// LoadResult fetches a previously saved game's summary by ID. The
// move log itself is not persisted; callers needing full replay
// should keep the in-process skrafl.Result.
func (s *Store) LoadResult(ctx context.Context, id uuid.UUID) (*gameEntity, error) {
	key := datastore.NameKey(gameKind, id.String(), nil)
	var ent gameEntity
	if err := s.client.Get(ctx, key, &ent); err != nil {
		return nil, fmt.Errorf("loading game %s: %w", id, err)
	}
	return &ent, nil
}
