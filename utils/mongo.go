package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/product-card-splicer/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const runsCollection = "splice_runs"

// RunStore persists splice run summaries to MongoDB
type RunStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo connects to uri and returns a store writing into database
func ConnectMongo(ctx context.Context, uri, database string) (*RunStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &RunStore{
		client:     client,
		collection: client.Database(database).Collection(runsCollection),
	}, nil
}

// SaveRun inserts run, assigning its ID and creation time when unset
func (s *RunStore) SaveRun(ctx context.Context, run *models.SpliceRun) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if _, err := s.collection.InsertOne(ctx, run); err != nil {
		return fmt.Errorf("failed to save splice run: %w", err)
	}
	return nil
}

// Close disconnects the underlying client
func (s *RunStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
