package lookup

import (
	lookuperrors "go-hrfine/internal/lookup/errors"
	"go-hrfine/internal/shared/dberr"
)

func mapRepositoryError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case dberr.IsNotFound(err):
		if kind == KindPositions {
			return lookuperrors.ErrPositionNotFound
		}
		return lookuperrors.ErrUnknownKind
	case dberr.IsUniqueViolation(err):
		if kind == KindPositions {
			return lookuperrors.ErrPositionNameTaken
		}
		return lookuperrors.ErrAlreadyExists.Withf("%s already exists", kind.Label())
	case dberr.IsForeignKeyViolation(err):
		return lookuperrors.ErrDepartmentNotFound
	}
	return err
}
