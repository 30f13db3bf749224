package service

import (
	"errors"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// ErrInvalidInput marks a request rejected before any computation: missing
// or out-of-range fields. Never retried.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is surfaced when a required recipe or user does not exist,
// distinct from ErrInvalidInput. Aliased from the store so handlers only
// need one sentinel.
var ErrNotFound = store.ErrNotFound
