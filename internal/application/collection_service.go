package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/greenloop/greencycle/internal/domain/entity"
	repo "github.com/greenloop/greencycle/internal/domain/repository"
)

// CollectionService owns the collection-request lifecycle: validation,
// persistence and best-effort search indexing.
type CollectionService struct {
	Repo    repo.CollectionRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewCollectionService(r repo.CollectionRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *CollectionService {
	return &CollectionService{Repo: r, Logger: logger, ES: es, ESIndex: esIndex}
}

// Create validates and normalizes the inbound fields, then inserts the
// record with status pending and a server-set creation timestamp.
func (s *CollectionService) Create(ctx context.Context, in CreateCollectionInput) (*entity.CollectionRequest, error) {
	rec, err := ValidateCollectionInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", rec.UserID).Error("create collection failed")
		}
		return nil, err
	}
	_ = s.indexCollection(ctx, rec)
	return rec, nil
}

// ListAll returns every collection request, newest first.
func (s *CollectionService) ListAll(ctx context.Context) ([]entity.CollectionRequest, error) {
	return s.Repo.ListAll(ctx)
}

// ListByUser returns the requests owned by userID, newest first.
func (s *CollectionService) ListByUser(ctx context.Context, userID string) ([]entity.CollectionRequest, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *CollectionService) indexCollection(ctx context.Context, c *entity.CollectionRequest) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         c.ID,
		"user_id":    c.UserID,
		"user_name":  c.UserName,
		"waste_type": c.WasteType,
		"location":   c.Location,
		"address":    c.Address,
		"status":     c.Status,
		"kilograms":  c.Kilograms,
		"created_at": c.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: c.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(ictx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("collection_id", c.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("collection_id", c.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over waste type, location and owner
// name. Without a configured Elasticsearch client it degrades to an empty
// result rather than failing.
func (s *CollectionService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"waste_type^2", "location", "user_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	sctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(sctx),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
