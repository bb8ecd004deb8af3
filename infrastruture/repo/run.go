package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.RunRepo = &RunRepo{}

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// RunRepo handles the persistence of runs in MongoDB.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index backing ByWorld.
func (r *RunRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "worldId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or updates a run in the repository.
func (r *RunRepo) Save(ctx context.Context, run *dmn.Run) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": run.ID}
	update := bson.M{
		"$set": bson.M{
			"worldId":        run.WorldID,
			"strategy":       run.Strategy,
			"solved":         run.Solved,
			"plan":           run.Plan,
			"nodesGenerated": run.NodesGenerated,
			"nodesExpanded":  run.NodesExpanded,
			"durationNs":     run.Duration,
			"createdAt":      run.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	return nil
}

// ByID retrieves a run by its ID.
func (r *RunRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var run dmn.Run
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&run); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrRunNotFound
		}
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}
	return &run, nil
}

// ByWorld retrieves up to limit runs over a world, newest first.
func (r *RunRepo) ByWorld(ctx context.Context, worldID string, limit int64) ([]*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"worldId": worldID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing runs of world %s: %w", worldID, err)
	}

	var runs []*dmn.Run
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("decoding runs of world %s: %w", worldID, err)
	}
	return runs, nil
}
