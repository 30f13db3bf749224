package models

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// StringArray is a custom type for handling string arrays stored as JSON
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Rating is a single user rating on a recipe. A recipe holds at most one
// rating per user; ApplyRating enforces the replacement.
type Rating struct {
	UserID string    `json:"user_id"`
	Rating int       `json:"rating"`
	Review string    `json:"review,omitempty"`
	Date   time.Time `json:"date"`
}

// RatingList stores the ratings array as a JSON column
type RatingList []Rating

func (l RatingList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *RatingList) Scan(value interface{}) error {
	if value == nil {
		*l = RatingList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// SubstitutionMap maps an ingredient name to its recipe-specific substitutes,
// stored as a JSON object column.
type SubstitutionMap map[string][]string

func (m SubstitutionMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

func (m *SubstitutionMap) Scan(value interface{}) error {
	if value == nil {
		*m = SubstitutionMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Nutrition holds per-serving nutrition facts
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

type Recipe struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
	Name          string           `gorm:"size:100;not null" json:"name"`
	Description   string           `gorm:"size:500" json:"description"`
	Cuisine       string           `gorm:"size:50;not null;index" json:"cuisine"`
	Ingredients   StringArray      `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions  StringArray      `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Nutrition     Nutrition        `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	PrepTime      int              `gorm:"not null" json:"prep_time"`
	CookTime      int              `gorm:"not null" json:"cook_time"`
	Servings      int              `gorm:"not null" json:"servings"`
	Difficulty    string           `gorm:"size:20;not null;index" json:"difficulty"`
	DietaryTags   StringArray      `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	ImageURL      string           `gorm:"size:255" json:"image_url"`
	Ratings       RatingList       `gorm:"type:jsonb;not null;default:'[]'" json:"ratings"`
	AverageRating float64          `gorm:"not null;default:0;index" json:"average_rating"`
	TotalRatings  int              `gorm:"not null;default:0" json:"total_ratings"`
	Substitutions SubstitutionMap  `gorm:"type:jsonb;not null;default:'{}'" json:"substitutions"`
	Embedding     pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

// TotalTime returns prep and cook time combined, in minutes.
func TotalTime(r Recipe) int {
	return r.PrepTime + r.CookTime
}

// RecalculateRating returns a copy of r with AverageRating and TotalRatings
// recomputed from the ratings list. The average is the mean rounded to one
// decimal; both derived fields are zero when no ratings exist.
func RecalculateRating(r Recipe) Recipe {
	if len(r.Ratings) == 0 {
		r.AverageRating = 0
		r.TotalRatings = 0
		return r
	}

	sum := 0
	for _, rating := range r.Ratings {
		sum += rating.Rating
	}

	mean := float64(sum) / float64(len(r.Ratings))
	r.AverageRating = math.Round(mean*10) / 10
	r.TotalRatings = len(r.Ratings)
	return r
}

// ApplyRating returns a copy of r with the given user's rating applied. An
// existing rating from the same user is replaced in place rather than
// appended; the derived rating fields are recomputed.
func ApplyRating(r Recipe, userID string, rating int, review string, at time.Time) Recipe {
	ratings := make(RatingList, len(r.Ratings))
	copy(ratings, r.Ratings)

	found := false
	for i := range ratings {
		if ratings[i].UserID == userID {
			ratings[i].Rating = rating
			if review != "" {
				ratings[i].Review = review
			}
			ratings[i].Date = at
			found = true
			break
		}
	}
	if !found {
		ratings = append(ratings, Rating{
			UserID: userID,
			Rating: rating,
			Review: review,
			Date:   at,
		})
	}

	r.Ratings = ratings
	return RecalculateRating(r)
}
