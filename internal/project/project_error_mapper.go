package project

import (
	"strings"

	projecterrors "go-hrfine/internal/project/errors"
	"go-hrfine/internal/shared/dberr"
)

var notFound = map[string]error{
	SectionDetails:  projecterrors.ErrProjectNotFound,
	SectionDuration: projecterrors.ErrDurationNotFound,
	SectionBill:     projecterrors.ErrBillNotFound,
	SectionPlan:     projecterrors.ErrPlanNotFound,
	SectionMember:   projecterrors.ErrMemberNotFound,
}

// mapRepositoryError translates driver errors raised while working on one
// project section.
func mapRepositoryError(section string, err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		if mapped, ok := notFound[section]; ok {
			return mapped
		}
		return projecterrors.ErrProjectNotFound
	}
	if dberr.IsUniqueViolation(err) {
		c := strings.ToLower(dberr.Constraint(err))
		switch {
		case strings.Contains(c, "project_code"):
			return projecterrors.ErrProjectCodeExists
		case strings.Contains(c, "period"):
			return projecterrors.ErrPeriodExists
		case strings.Contains(c, "member"):
			return projecterrors.ErrMemberExists
		}
		return projecterrors.ErrSectionExists
	}
	if dberr.IsForeignKeyViolation(err) {
		return projecterrors.ErrProjectNotFound
	}
	return err
}
