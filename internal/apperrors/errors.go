package apperrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain failure taxonomy. Repositories translate raw store errors into
// these sentinels at their boundary; everything above the repository
// matches with errors.Is and never sees driver error text.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrForbidden            = errors.New("not the owner of the resource")
	ErrAlreadyFunded        = errors.New("wish already has offers")
	ErrSelfCopy             = errors.New("cannot copy own wish")
	ErrWishReferenceInvalid = errors.New("referenced wish does not exist")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidAmount        = errors.New("offer amount must be positive")
)

// Postgres SQLSTATE codes (class 23, integrity constraint violation).
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsDuplicateKey reports whether err is a unique-constraint violation.
// The string fallback covers drivers that do not surface *pgconn.PgError.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure. What it means depends on the call site: a dangling wish id on
// offer insert, a dangling item id on wishlist composition.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "violates foreign key constraint")
}
