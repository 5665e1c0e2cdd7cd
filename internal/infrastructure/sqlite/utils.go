package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte
// d'unicité SQLite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
