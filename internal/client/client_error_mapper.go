package client

import (
	"strings"

	clienterrors "go-hrfine/internal/client/errors"
	"go-hrfine/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return clienterrors.ErrClientNotFound
	}
	if dberr.IsUniqueViolation(err) {
		c := strings.ToLower(dberr.Constraint(err))
		switch {
		case strings.Contains(c, "client_name"):
			return clienterrors.ErrClientNameExists
		case strings.Contains(c, "client_code"):
			return clienterrors.ErrClientCodeExists
		}
	}
	if dberr.IsForeignKeyViolation(err) {
		return clienterrors.ErrProjectTypeNotFound
	}
	return err
}
