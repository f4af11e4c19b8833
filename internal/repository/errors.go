package repository

import (
	"database/sql/driver"
	"errors"
	"net"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translate maps driver and GORM errors onto application errors. notFound is
// returned for gorm.ErrRecordNotFound, duplicate for unique violations.
func translate(err error, op string, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	if isUniqueViolation(err) && duplicate != nil {
		return duplicate
	}
	if isConnectionFailure(err) {
		return apperrors.NewConnectionError(op, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// violatedConstraint returns the constraint named by a Postgres unique
// violation, or "" for any other error
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}

func isConnectionFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
