package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AnalysisRecord is a persisted summary of a completed analysis request.
type AnalysisRecord struct {
	bun.BaseModel `bun:"table:analyses,alias:an"`

	ID            uuid.UUID `bun:",pk,type:uuid,default:uuid_generate_v4()" json:"id"`
	Kind          string    `bun:"kind,notnull" json:"kind"` // point | area | suggest
	Lat           float64   `bun:"lat,notnull" json:"lat"`
	Lng           float64   `bun:"lng,notnull" json:"lng"`
	AreaHectares  float64   `bun:"area_hectares" json:"area_hectares"`
	DominantClass string    `bun:"dominant_class,notnull" json:"dominant_class"`
	Confidence    float64   `bun:"confidence,notnull" json:"confidence"`
	SampleCount   int       `bun:"sample_count,notnull" json:"sample_count"`
	TopCrop       *string   `bun:"top_crop" json:"top_crop,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
