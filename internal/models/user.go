package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// SearchEntry is one recorded ingredient search
type SearchEntry struct {
	Ingredients []string  `json:"ingredients"`
	Timestamp   time.Time `json:"timestamp"`
}

// SearchHistoryList stores the search history as a JSON column. Entries are
// append-only; readers cap how far back they look.
type SearchHistoryList []SearchEntry

func (l SearchHistoryList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *SearchHistoryList) Scan(value interface{}) error {
	if value == nil {
		*l = SearchHistoryList{}
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

// UserProfile is created lazily the first time a userId is seen.
type UserProfile struct {
	UserID             string            `gorm:"size:100;primary_key" json:"user_id"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Favorites          StringArray       `gorm:"type:jsonb;not null;default:'[]'" json:"favorites"`
	DietaryPreferences StringArray       `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_preferences"`
	SearchHistory      SearchHistoryList `gorm:"type:jsonb;not null;default:'[]'" json:"search_history"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// HasFavorite reports whether the given recipe id is in the favorites set.
func (u UserProfile) HasFavorite(recipeID string) bool {
	for _, id := range u.Favorites {
		if id == recipeID {
			return true
		}
	}
	return false
}
