package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/embedding"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

// Store implements RecipeStore and UserStore on top of gorm. Production runs
// on postgres; unit tests run the same code on in-memory sqlite.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user-supplied terms. Every LIKE
// built here carries ESCAPE '\' so the escapes work on sqlite too.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// jsonColumn returns the expression that exposes a JSON column as text for
// LIKE matching. Postgres needs the cast; sqlite stores JSON as text already.
func (s *Store) jsonColumn(name string) string {
	if s.db.Dialector.Name() == "postgres" {
		return name + "::text"
	}
	return name
}

// filterQuery builds a fresh query applying every criterion of the filter.
// Criteria are conjunctive.
func (s *Store) filterQuery(ctx context.Context, filter RecipeFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})

	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if len(filter.DietaryTags) > 0 {
		query = query.Where(s.anyTagCondition(filter.DietaryTags))
	}
	if filter.MaxTime > 0 {
		query = query.Where("prep_time + cook_time <= ?", filter.MaxTime)
	}
	if filter.Search != "" {
		like := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR LOWER("+s.jsonColumn("ingredients")+") LIKE ? ESCAPE '\\' OR LOWER(cuisine) LIKE ? ESCAPE '\\'",
			like, like, like, like,
		)
	}

	return query
}

// anyTagCondition matches recipes carrying at least one of the given tags.
// Tags are stored as a JSON array, so membership is a quoted-value LIKE.
func (s *Store) anyTagCondition(tags []string) *gorm.DB {
	column := s.jsonColumn("dietary_tags")
	cond := s.db.Where(column+` LIKE ? ESCAPE '\'`, `%"`+escapeLike(tags[0])+`"%`)
	for _, tag := range tags[1:] {
		cond = cond.Or(column+` LIKE ? ESCAPE '\'`, `%"`+escapeLike(tag)+`"%`)
	}
	return cond
}

func (s *Store) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error) {
	filter = filter.Normalize()

	var total int64
	if err := s.filterQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := s.filterQuery(ctx, filter)
	sortExpr := "average_rating DESC"
	switch filter.SortBy {
	case SortTime:
		sortExpr = "prep_time + cook_time ASC"
	case SortNewest:
		sortExpr = "created_at DESC"
	}

	// On postgres a free-text search additionally breaks sort ties by
	// embedding distance to the query text. The distance goes after the
	// sort key so it never overrides the requested order.
	if filter.Search != "" && s.db.Dialector.Name() == "postgres" {
		vec := embedding.Generate(filter.Search)
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                sortExpr + ", embedding <-> ?",
				Vars:               []interface{}{vec},
				WithoutParentheses: true,
			},
		})
	} else {
		query = query.Order(sortExpr)
	}

	var recipes []models.Recipe
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *Store) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	if len(recipe.Embedding.Slice()) == 0 {
		recipe.Embedding = embedding.Generate(recipe.Name + " " + recipe.Description)
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

func (s *Store) Save(ctx context.Context, recipe *models.Recipe) error {
	return s.db.WithContext(ctx).Save(recipe).Error
}

func (s *Store) FindByIngredients(ctx context.Context, ingredients []string, dietaryTags []string) ([]models.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, nil
	}

	column := "LOWER(" + s.jsonColumn("ingredients") + ")"
	cond := s.db.Where(column+` LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(ingredients[0]))+"%")
	for _, ing := range ingredients[1:] {
		cond = cond.Or(column+` LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(ing))+"%")
	}

	query := s.db.WithContext(ctx).Model(&models.Recipe{}).Where(cond)
	if len(dietaryTags) > 0 {
		query = query.Where(s.anyTagCondition(dietaryTags))
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Store) FindByIDs(ctx context.Context, ids []string) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Store) TopRated(ctx context.Context, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Order("average_rating DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Store) DistinctCuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Distinct("cuisine").
		Pluck("cuisine", &cuisines).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(cuisines)
	return cuisines, nil
}

func (s *Store) DistinctDietaryTags(ctx context.Context) ([]string, error) {
	// Tags live inside a JSON array column, so distinct values are unwound
	// in memory rather than in SQL.
	var lists []models.StringArray
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Pluck("dietary_tags", &lists).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, list := range lists {
		for _, tag := range list {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *Store) GetOrCreateUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).
		Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) AddFavorite(ctx context.Context, userID, recipeID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		if profile.HasFavorite(recipeID) {
			return nil
		}
		profile.Favorites = append(profile.Favorites, recipeID)
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) RemoveFavorite(ctx context.Context, userID, recipeID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		favorites := make(models.StringArray, 0, len(profile.Favorites))
		for _, id := range profile.Favorites {
			if id != recipeID {
				favorites = append(favorites, id)
			}
		}
		profile.Favorites = favorites
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) SetDietaryPreferences(ctx context.Context, userID string, prefs []string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		profile.DietaryPreferences = models.StringArray(prefs)
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) AppendSearchHistory(ctx context.Context, userID string, ingredients []string, at time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		if err := tx.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		profile.SearchHistory = append(profile.SearchHistory, models.SearchEntry{
			Ingredients: ingredients,
			Timestamp:   at,
		})
		return tx.Save(&profile).Error
	})
}
