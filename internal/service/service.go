// Package service owns the business rules per entity: image key naming,
// public URL construction, numeric coercion and email normalisation. Each
// operation is a single pass over the database and the blob store with no
// transaction spanning the two; cleanups after partial failure are
// best-effort background tasks.
package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront/internal/model"
	"storefront/internal/processor"
)

// Indirections for test stubbing, following the handler/store pattern.
var (
	resizeImage = processor.Resize
	newImageKey = NewImageKey
)

// coerceNumber turns the textual form value into its strict numeric type.
// Anything that does not parse to a finite number is a caller error.
func coerceNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be numeric: %w", field, model.ErrInvalidInput)
	}
	return v, nil
}
