// Package schema provides database models for exported rating runs.
// Every export creates one RatingRun, the standings of all people
// and the points of every product they were rated on.
package schema

import (
	"database/sql"
	"time"
)

// RatingRun stores the settings of one export.
type RatingRun struct {
	// ID is a random UUID assigned at export time.
	ID string `db:"id" gorm:"type:uuid;primaryKey"`

	// Year restricts products to one publication year, 0 means all.
	Year int `db:"year" gorm:"type:smallint;not null;default:0"`

	// Exclusion is the policy exclusion variant that was applied.
	Exclusion string `db:"exclusion" gorm:"type:varchar(50);not null"`

	// CollabThreshold is the author count of a large collaboration.
	CollabThreshold int `db:"collab_threshold" gorm:"type:int;not null"`

	// MinProducts is the number of products needed to be ranked.
	MinProducts int `db:"min_products" gorm:"type:int;not null"`

	// DropDuplicates is true when undeclared duplicates were removed.
	DropDuplicates bool `db:"drop_duplicates" gorm:"not null"`

	// Source is the path of the SQLite file the records came from.
	Source string `db:"source" gorm:"type:text"`

	// NumPersons is the number of exported person ratings.
	NumPersons int `db:"num_persons" gorm:"type:int"`

	// NumProducts is the number of exported product ratings.
	NumProducts int `db:"num_products" gorm:"type:int"`

	// Version of gnrating that made the export.
	Version string `db:"version" gorm:"type:varchar(50)"`

	CreatedAt time.Time `db:"created_at" gorm:"type:timestamp without time zone"`
}

// PersonRating is the standing of a person in one run.
type PersonRating struct {
	RunID string `db:"run_id" gorm:"type:uuid;primaryKey"`

	// PersonName is the upper-cased "SURNAME NAME" of the person.
	PersonName string `db:"person_name" gorm:"type:varchar(255);primaryKey"`

	SubArea string `db:"sub_area" gorm:"type:varchar(1);index:idx_person_ratings_sub_area"`

	// Ranking is the 0-based position in the sub-area, -1 when the
	// person was not ranked.
	Ranking int `db:"ranking" gorm:"type:int;not null"`

	Rating            float64 `db:"rating" gorm:"not null"`
	NumProducts       int     `db:"num_products" gorm:"type:int;not null"`
	NumCollabProducts int     `db:"num_collab_products" gorm:"type:int;not null"`

	MinNumAuthors  sql.NullInt32   `db:"min_num_authors" gorm:"type:int"`
	MeanNumAuthors sql.NullFloat64 `db:"mean_num_authors"`
	MaxNumAuthors  sql.NullInt32   `db:"max_num_authors" gorm:"type:int"`

	// NumDropped is the number of undeclared duplicates removed.
	NumDropped int `db:"num_dropped" gorm:"type:int;not null;default:0"`
}

// ProductRating is the score of one product for one person.
type ProductRating struct {
	// ID is UUID v5 of run ID, person name and handle.
	ID string `db:"id" gorm:"type:uuid;primaryKey"`

	RunID      string `db:"run_id" gorm:"type:uuid;not null;index:idx_product_ratings_run"`
	PersonName string `db:"person_name" gorm:"type:varchar(255);not null"`
	Handle     string `db:"handle" gorm:"type:varchar(255);not null;index:idx_product_ratings_handle"`

	// SourceRow is the row of the product in the source table.
	SourceRow int `db:"source_row" gorm:"type:int;not null"`

	PubType      string          `db:"pub_type" gorm:"type:varchar(100)"`
	Year         sql.NullInt32   `db:"year" gorm:"type:smallint"`
	Title        sql.NullString  `db:"title" gorm:"type:text"`
	NumAuthors   sql.NullInt32   `db:"num_authors" gorm:"type:int"`
	ImpactFactor sql.NullFloat64 `db:"impact_factor"`

	Points float64 `db:"points" gorm:"not null"`

	// Duplicate is true for undeclared duplicates that earned nothing.
	Duplicate bool `db:"duplicate" gorm:"not null;default:false"`
}
