package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/greenloop/greencycle/internal/domain/entity"
	repo "github.com/greenloop/greencycle/internal/domain/repository"
)

// ReferenceService serves the static lookup tables (centers, tutorials).
// Both are seeded on first read when the collection is empty. The count
// check and insert are not atomic; two concurrent first reads can both
// seed, which at worst duplicates the seed rows. Accepted as-is.
type ReferenceService struct {
	Centers   repo.CenterRepository
	Tutorials repo.TutorialRepository
	Logger    *logrus.Logger
}

func NewReferenceService(centers repo.CenterRepository, tutorials repo.TutorialRepository, logger *logrus.Logger) *ReferenceService {
	return &ReferenceService{Centers: centers, Tutorials: tutorials, Logger: logger}
}

// DefaultCenters is the seed set for the recycling-center lookup table.
var DefaultCenters = []entity.Center{
	{Name: "Northside Recycling Hub", Address: "14 Elm Street", City: "Springfield", Phone: "555-0141", Accepted: []string{"plastic", "glass", "paper"}},
	{Name: "Riverside Materials Depot", Address: "220 Harbor Road", City: "Springfield", Phone: "555-0178", Accepted: []string{"metal", "electronics"}},
	{Name: "Greenfield Drop-off Point", Address: "3 Orchard Lane", City: "Greenfield", Phone: "555-0102", Accepted: []string{"organic", "paper", "glass"}},
}

// DefaultTutorials is the seed set for the tutorial lookup table.
var DefaultTutorials = []entity.Tutorial{
	{Title: "Sorting household waste", Summary: "Which bin does it go in? The basics of separating recyclables.", VideoURL: "https://videos.greencycle.example/sorting-basics"},
	{Title: "Preparing plastics for pickup", Summary: "Rinse, crush, and bundle plastics so collectors can process them faster.", VideoURL: "https://videos.greencycle.example/plastics-prep"},
	{Title: "Composting at home", Summary: "Turn organic waste into garden soil instead of landfill volume.", VideoURL: "https://videos.greencycle.example/composting"},
}

// ListCenters returns all centers, seeding the defaults if the table is empty.
func (s *ReferenceService) ListCenters(ctx context.Context) ([]entity.Center, error) {
	if err := s.seedCenters(ctx); err != nil {
		return nil, err
	}
	return s.Centers.List(ctx)
}

// ListTutorials returns all tutorials, seeding the defaults if the table is empty.
func (s *ReferenceService) ListTutorials(ctx context.Context) ([]entity.Tutorial, error) {
	if err := s.seedTutorials(ctx); err != nil {
		return nil, err
	}
	return s.Tutorials.List(ctx)
}

// Seed populates both lookup tables if empty. Used by cmd/seed.
func (s *ReferenceService) Seed(ctx context.Context) error {
	if err := s.seedCenters(ctx); err != nil {
		return err
	}
	return s.seedTutorials(ctx)
}

func (s *ReferenceService) seedCenters(ctx context.Context) error {
	n, err := s.Centers.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(DefaultCenters)).Info("seeding recycling centers")
	}
	return s.Centers.InsertMany(ctx, DefaultCenters)
}

func (s *ReferenceService) seedTutorials(ctx context.Context) error {
	n, err := s.Tutorials.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(DefaultTutorials)).Info("seeding tutorials")
	}
	return s.Tutorials.InsertMany(ctx, DefaultTutorials)
}
