package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ===============================
// Business Errors
// ===============================

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindPolicy     Kind = "policy"
	KindTransition Kind = "transition"
)

type BusinessError struct {
	Code  string
	Kind  Kind
	Field string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Kind: KindValidation}
}

func ErrValidation(code, field string) error {
	return BusinessError{Code: code, Kind: KindValidation, Field: field}
}

func ErrConflict(code string) error {
	return BusinessError{Code: code, Kind: KindConflict}
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrPolicy(code string) error {
	return BusinessError{Code: code, Kind: KindPolicy}
}

func ErrTransition(code string) error {
	return BusinessError{Code: code, Kind: KindTransition}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

func FieldOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Field
	}
	return ""
}

// IsExclusionConflict detecta violação da constraint de exclusão de
// intervalos (ou unique constraint) no Postgres
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
