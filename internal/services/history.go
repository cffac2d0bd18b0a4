package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// HistoryService reads persisted analysis summaries.
type HistoryService struct {
	db *bun.DB
}

func NewHistoryService(db *bun.DB) *HistoryService {
	return &HistoryService{db: db}
}

// ListAnalyses returns recent analyses, newest first. Kind filters on
// point/area when non-empty.
func (s *HistoryService) ListAnalyses(ctx context.Context, kind string, limit, offset int) ([]models.AnalysisRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var records []models.AnalysisRecord
	q := s.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)

	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAnalysis returns one persisted analysis by id.
func (s *HistoryService) GetAnalysis(ctx context.Context, id uuid.UUID) (*models.AnalysisRecord, error) {
	rec := new(models.AnalysisRecord)
	err := s.db.NewSelect().Model(rec).Where("an.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ClassCounts aggregates how often each dominant class was seen across
// stored analyses.
func (s *HistoryService) ClassCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		DominantClass string `bun:"dominant_class"`
		Count         int    `bun:"count"`
	}
	err := s.db.NewSelect().
		Model((*models.AnalysisRecord)(nil)).
		Column("dominant_class").
		ColumnExpr("count(*) AS count").
		Group("dominant_class").
		Order("count DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.DominantClass] = r.Count
	}
	return counts, nil
}
