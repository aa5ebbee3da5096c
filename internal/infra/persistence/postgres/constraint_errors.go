package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. The pgx driver translates
// SQLSTATE codes into GORM's sentinel errors; the string fallbacks cover the
// cases the translator misses.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503")
}

// violatesConstraint reports whether the error names the given constraint,
// so duplicate-key errors on different unique indexes of one table can be
// told apart.
func violatesConstraint(err error, constraint string) bool {
	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(constraint))
}
