package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenloop/greencycle/internal/domain/entity"
	"github.com/greenloop/greencycle/internal/domain/repository"
)

type CollectionRepository struct {
	col *mongo.Collection
}

func NewCollectionRepository(db *mongo.Database) *CollectionRepository {
	return &CollectionRepository{col: db.Collection(CollectionsCollection)}
}

type dbCollection struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	UserName     string             `bson:"user_name"`
	WasteType    string             `bson:"waste_type"`
	Location     string             `bson:"location"`
	Address      string             `bson:"address"`
	DateTime     time.Time          `bson:"date_time"`
	Kilograms    float64            `bson:"kilograms"`
	RewardPoints float64            `bson:"reward_points"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d dbCollection) toEntity() entity.CollectionRequest {
	return entity.CollectionRequest{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		UserName:     d.UserName,
		WasteType:    d.WasteType,
		Location:     d.Location,
		Address:      d.Address,
		DateTime:     d.DateTime,
		Kilograms:    d.Kilograms,
		RewardPoints: d.RewardPoints,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *CollectionRepository) Create(ctx context.Context, c *entity.CollectionRequest) error {
	doc := dbCollection{
		UserID:       c.UserID,
		UserName:     c.UserName,
		WasteType:    c.WasteType,
		Location:     c.Location,
		Address:      c.Address,
		DateTime:     c.DateTime,
		Kilograms:    c.Kilograms,
		RewardPoints: c.RewardPoints,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("mongo insert collection: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *CollectionRepository) ListAll(ctx context.Context) ([]entity.CollectionRequest, error) {
	return r.find(ctx, bson.M{})
}

func (r *CollectionRepository) ListByUser(ctx context.Context, userID string) ([]entity.CollectionRequest, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *CollectionRepository) find(ctx context.Context, filter bson.M) ([]entity.CollectionRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find collections: %w", err)
	}
	defer cur.Close(ctx)

	var docs []dbCollection
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode collections: %w", err)
	}
	out := make([]entity.CollectionRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

var _ repository.CollectionRepository = (*CollectionRepository)(nil)
