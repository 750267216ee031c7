package user

import (
	"strings"

	"go-hrfine/internal/shared/dberr"
	usererrors "go-hrfine/internal/user/errors"
)

// MapRepositoryError translates driver errors raised on the users table.
// It is exported because auth and employee write users inside their own
// transactions.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return usererrors.ErrUserNotFound
	}
	if dberr.IsUniqueViolation(err) {
		c := strings.ToLower(dberr.Constraint(err))
		switch {
		case strings.Contains(c, "email"):
			return usererrors.ErrEmailAlreadyExists
		case strings.Contains(c, "emp_id"):
			return usererrors.ErrEmpIDAlreadyExists
		}
	}
	return err
}
