package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenloop/greencycle/internal/domain/entity"
	"github.com/greenloop/greencycle/internal/domain/repository"
)

type CenterRepository struct {
	col *mongo.Collection
}

func NewCenterRepository(db *mongo.Database) *CenterRepository {
	return &CenterRepository{col: db.Collection(CentersCollection)}
}

func (r *CenterRepository) List(ctx context.Context) ([]entity.Center, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find centers: %w", err)
	}
	defer cur.Close(ctx)

	var out []entity.Center
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo decode centers: %w", err)
	}
	return out, nil
}

func (r *CenterRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *CenterRepository) InsertMany(ctx context.Context, centers []entity.Center) error {
	docs := make([]interface{}, 0, len(centers))
	for _, c := range centers {
		docs = append(docs, bson.M{
			"name":     c.Name,
			"address":  c.Address,
			"city":     c.City,
			"phone":    c.Phone,
			"accepted": c.Accepted,
		})
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

type TutorialRepository struct {
	col *mongo.Collection
}

func NewTutorialRepository(db *mongo.Database) *TutorialRepository {
	return &TutorialRepository{col: db.Collection(TutorialsCollection)}
}

func (r *TutorialRepository) List(ctx context.Context) ([]entity.Tutorial, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find tutorials: %w", err)
	}
	defer cur.Close(ctx)

	var out []entity.Tutorial
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo decode tutorials: %w", err)
	}
	return out, nil
}

func (r *TutorialRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *TutorialRepository) InsertMany(ctx context.Context, tutorials []entity.Tutorial) error {
	docs := make([]interface{}, 0, len(tutorials))
	for _, t := range tutorials {
		docs = append(docs, bson.M{
			"title":     t.Title,
			"summary":   t.Summary,
			"video_url": t.VideoURL,
		})
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

var (
	_ repository.CenterRepository   = (*CenterRepository)(nil)
	_ repository.TutorialRepository = (*TutorialRepository)(nil)
)
