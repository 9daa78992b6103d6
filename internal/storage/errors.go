package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hollisb/penny/internal/common"

	"github.com/mattn/go-sqlite3"
)

// classifyConstraintErr maps a sqlite constraint failure onto the
// application's error kinds. Only dedupe_hash uniqueness is expected
// control flow; everything else stays a hard failure for the caller.
func classifyConstraintErr(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		if strings.Contains(sqliteErr.Error(), "transactions.dedupe_hash") {
			return fmt.Errorf("%w: %v", common.ErrDuplicateTransaction, err)
		}
		return fmt.Errorf("%w: %v", common.ErrDuplicateEntry, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %v", common.ErrForeignKeyViolation, err)
	case sqlite3.ErrConstraintCheck:
		// The account type check is the only CHECK constraint in the schema.
		return fmt.Errorf("%w: %v", common.ErrInvalidAccountType, err)
	default:
		return err
	}
}
