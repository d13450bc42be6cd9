package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"

	"gorm.io/gorm"
)

// translateError maps GORM errors onto domain sentinels
func translateError(err error, action, entity, id string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s with ID %s %w", entity, id, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("failed to %s %s: %w", action, entity, domain.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s with ID %s %w", entity, id, domain.ErrNotFound)
}

func orderClause(sortBy, sortOrder, fallback string) string {
	if sortBy == "" {
		sortBy = fallback
	}
	if sortOrder == "" {
		sortOrder = "asc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches term literally anywhere in a column compared with likeEscaped
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// likeEscaped renders "<expr> LIKE <pattern> ESCAPE '\'"
func likeEscaped(expr, pattern string) string {
	return expr + " LIKE " + pattern + ` ESCAPE '\'`
}
