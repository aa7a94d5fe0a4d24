package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// hasValue mirrors a truthiness check on a query parameter: empty means absent.
func hasValue(s string) bool {
	return strings.TrimSpace(s) != ""
}

// splitFields turns "name, price" into [name price]. Blank entries are dropped.
func (uc *implUseCase) splitFields(raw string) []string {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// parseMinPrice coerces minPrice to a number. A non-numeric value becomes NaN
// and is sent to the store as is, unless strict query parsing is enabled.
func (uc *implUseCase) parseMinPrice(ctx context.Context, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil {
		return v, nil
	}
	if uc.strictQuery {
		return 0, catalog.ErrInvalidMinPrice
	}
	uc.l.Warnf(ctx, "uc.List: minPrice %q is not a number, querying with NaN", raw)
	return math.NaN(), nil
}

func (uc *implUseCase) validateName(fields catalog.Document) error {
	name, ok := fields[catalog.FieldName].(string)
	if !ok || name == "" {
		return catalog.ErrNameRequired
	}
	return nil
}

// validateFieldNames rejects keys the store would treat as operators or paths.
func (uc *implUseCase) validateFieldNames(fields catalog.Document) error {
	for k := range fields {
		if !validFieldName(k) {
			return catalog.ErrInvalidField
		}
	}
	return nil
}

// validateProjection applies the same rule to the names listed in fields.
func (uc *implUseCase) validateProjection(fields []string) error {
	for _, f := range fields {
		if !validFieldName(f) {
			return catalog.ErrInvalidField
		}
	}
	return nil
}

func validFieldName(k string) bool {
	return k != "" && !strings.HasPrefix(k, "$") && !strings.Contains(k, ".")
}

// hasSettableField reports whether fields holds anything besides the identifier.
func hasSettableField(fields catalog.Document) bool {
	for k := range fields {
		if k != catalog.IDField {
			return true
		}
	}
	return false
}

func (uc *implUseCase) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		return catalog.ErrInvalidID
	case errors.Is(err, repo.ErrNotReady):
		return catalog.ErrStoreNotReady
	default:
		return err
	}
}
