package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Scope narrows a query, typically to the rows the caller may access
type Scope = func(*gorm.DB) *gorm.DB

func applyScope(db *gorm.DB, scope Scope) *gorm.DB {
	if scope == nil {
		return db
	}
	return db.Scopes(scope)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UniqueConstraint returns the name of the violated constraint, or "" when err is not a unique violation
func UniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
