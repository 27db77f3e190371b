package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Article is the output of one generation call: the SEO-tuned text plus the
// metadata downstream editors and exporters consume.
type Article struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Title           string    `json:"title" db:"title" gorm:"not null"`
	MetaDescription string    `json:"meta_description" db:"meta_description"`
	Body            string    `json:"body" db:"body" gorm:"type:text"`

	// JSON-LD schema object, serialized at generation time
	SchemaJSON string `json:"schema_json" db:"schema_json" gorm:"type:text"`

	// Generation inputs, kept so the article can be rescored after edits
	PrimaryKeyword    string         `json:"primary_keyword" db:"primary_keyword" gorm:"not null"`
	SecondaryKeywords pq.StringArray `json:"secondary_keywords" db:"secondary_keywords" gorm:"type:text[]"`
	ContentType       string         `json:"content_type" db:"content_type"`
	Tone              string         `json:"tone" db:"tone"`

	WordCount int `json:"word_count" db:"word_count" gorm:"default:0"`

	// Denormalized headline numbers from the latest ScoreReport
	Score int    `json:"score" db:"score" gorm:"default:0"`
	Grade string `json:"grade" db:"grade"`

	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`

	// Owner, when the article was generated by an authenticated user
	UserID *uuid.UUID `json:"user_id,omitempty" db:"user_id" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Full score report for the current body; recomputed on demand, never stored
	Report *ScoreReport `json:"seo_report,omitempty" gorm:"-"`
}

// TableName sets the table name for the Article model
func (Article) TableName() string {
	return "articles"
}
