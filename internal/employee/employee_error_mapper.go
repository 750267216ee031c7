package employee

import (
	"strings"

	employeeerrors "go-hrfine/internal/employee/errors"
	"go-hrfine/internal/shared/dberr"
)

var sectionLabels = map[string]string{
	SectionPersonalInfo:        "Personal info",
	SectionAddressInfo:         "Address info",
	SectionRegistrationAddress: "Registration address",
	SectionContactInfo:         "Contact info",
	SectionHiringInfo:          "Hiring info",
	SectionPaymentInfo:         "Payment info",
	SectionDeductionInfo:       "Deduction info",
}

func sectionLabel(section string) string {
	if l, ok := sectionLabels[section]; ok {
		return l
	}
	return section
}

func mapRepositoryError(section string, err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return employeeerrors.ErrSectionNotFound.Withf("%s not found for this employee", sectionLabel(section))
	}
	if dberr.IsUniqueViolation(err) && strings.Contains(strings.ToLower(dberr.Constraint(err)), "emp_id") {
		return employeeerrors.ErrSectionAlreadyExists.Withf("%s already exists", sectionLabel(section))
	}
	if dberr.IsForeignKeyViolation(err) {
		return employeeerrors.ErrLookupNotFound
	}
	return err
}
