package service

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// MaxImageSize is the upload limit for recipe images.
const MaxImageSize = 5 * 1024 * 1024

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ObjectUploader is the subset of the S3 client the image service needs.
type ObjectUploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores recipe images in S3 and records the resulting URL on
// the recipe.
type ImageService struct {
	uploader ObjectUploader
	bucket   string
	recipes  store.RecipeStore
	logger   *zap.Logger
}

// NewImageService creates a new ImageService instance
func NewImageService(uploader ObjectUploader, bucket string, recipes store.RecipeStore, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{
		uploader: uploader,
		bucket:   bucket,
		recipes:  recipes,
		logger:   logger,
	}
}

// UploadRecipeImage validates and stores an image for the given recipe, then
// writes the public URL back onto the recipe record. Returns the URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID string, data []byte, contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: only JPEG, PNG and WebP images are allowed", ErrInvalidInput)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image data is empty", ErrInvalidInput)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: image exceeds the 5MB limit", ErrInvalidInput)
	}

	id, err := uuid.Parse(recipeID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	recipe, err := s.recipes.Get(ctx, id)
	if err != nil {
		return "", err
	}

	key := path.Join("recipes", recipeID, uuid.New().String()+ext)
	_, err = s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	recipe.ImageURL = url
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return "", fmt.Errorf("saving image url: %w", err)
	}

	s.logger.Info("recipe image uploaded",
		zap.String("recipe_id", recipeID),
		zap.String("key", key),
	)
	return url, nil
}
