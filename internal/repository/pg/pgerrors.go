package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrIsExistCode = "23505"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify inspects the SQLSTATE of err. Both error shapes are handled: the
// pgx stdlib driver behind the pool surfaces *pgconn.PgError, while sqlmock
// tests and older call sites use *pq.Error.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if code, ok := sqlState(err); ok {
		return classifyCode(code)
	}

	return NonRetriable
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	code, ok := sqlState(err)
	return ok && code == ErrIsExistCode
}

func sqlState(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}

	return "", false
}

// PostgreSQL error codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifyCode(code string) ErrorClassification {
	switch code {
	// class 08 - connection exceptions
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// class 40 - transaction rollback (serialization failure, deadlock)
	case "40000", "40001", "40P01":
		return Retriable

	// class 57 - operator intervention
	case "57P03":
		return Retriable
	}

	return NonRetriable
}
