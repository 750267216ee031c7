package employee

import (
	"strings"

	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/patch"
)

func (p PersonalInfoPatch) apply(rec *PersonalInfo) error {
	p.Religion.ApplyPtr(&rec.Religion)
	return patch.FirstErr(
		patch.Text(p.NationID, &rec.NationID, "nation_id"),
		patch.Text(p.ThaiName, &rec.ThaiName, "thai_name"),
		patch.Text(p.EngName, &rec.EngName, "eng_name"),
		patch.Text(p.ThaiNickname, &rec.ThaiNickname, "thai_nickname"),
		patch.Text(p.EngNickname, &rec.EngNickname, "eng_nickname"),
		patch.Text(p.Gender, &rec.Gender, "gender"),
		patch.Text(p.Nation, &rec.Nation, "nation"),
		patch.DatePtr(p.DateBirth, &rec.DateBirth, "date_birth"),
	)
}

func (p AddressPatch) apply(a *Address) error {
	p.RoomNo.ApplyPtr(&a.RoomNo)
	p.Floor.ApplyPtr(&a.Floor)
	p.Village.ApplyPtr(&a.Village)
	p.Building.ApplyPtr(&a.Building)
	p.Alley.ApplyPtr(&a.Alley)
	p.Road.ApplyPtr(&a.Road)
	return patch.FirstErr(
		patch.Text(p.HouseNo, &a.HouseNo, "house_no"),
		p.VillageNo.Apply(&a.VillageNo, "village_no"),
		patch.Text(p.SubDistrict, &a.SubDistrict, "sub_district"),
		patch.Text(p.District, &a.District, "district"),
		patch.Text(p.Province, &a.Province, "province"),
		patch.Text(p.Zipcode, &a.Zipcode, "zipcode"),
		patch.Text(p.Country, &a.Country, "country"),
	)
}

// apply leaves Email alone; the service writes it together with users.email.
func (p ContactInfoPatch) apply(rec *ContactInfo) error {
	return patch.FirstErr(
		patch.Text(p.Tel, &rec.Tel, "tel"),
		patch.Text(p.LineID, &rec.LineID, "line_id"),
	)
}

func (p HiringInfoPatch) apply(rec *HiringInfo) error {
	if p.Manager.Present {
		if p.Manager.Value == nil || strings.TrimSpace(*p.Manager.Value) == "" {
			rec.Manager = nil
		} else {
			m := strings.TrimSpace(*p.Manager.Value)
			rec.Manager = &m
		}
	}
	return patch.FirstErr(
		patch.Date(p.StartDate, &rec.StartDate, "start_date"),
		patch.DatePtr(p.ProbationDate, &rec.ProbationDate, "probation_date"),
		patch.DatePtr(p.TerminateDate, &rec.TerminateDate, "terminate_date"),
		p.WorkingStatusID.Apply(&rec.WorkingStatusID, "working_status_id"),
		p.EmployeeTypeID.Apply(&rec.EmployeeTypeID, "employee_type_id"),
		p.ContractTypeID.Apply(&rec.ContractTypeID, "contract_type_id"),
		p.CompanyID.Apply(&rec.CompanyID, "company_id"),
		p.DepartmentID.Apply(&rec.DepartmentID, "department_id"),
		p.PositionID.Apply(&rec.PositionID, "position_id"),
	)
}

func (p PaymentInfoPatch) apply(rec *PaymentInfo) error {
	p.AccountNo.ApplyPtr(&rec.AccountNo)
	p.Bank.ApplyPtr(&rec.Bank)
	p.AccountName.ApplyPtr(&rec.AccountName)
	return patch.Text(p.PaymentType, &rec.PaymentType, "payment_type")
}

func (p DeductionInfoPatch) apply(rec *DeductionInfo) error {
	p.SocialSecurityCompany.ApplyPtr(&rec.SocialSecurityCompany)
	p.SocialSecurityEmpPercentage.ApplyPtr(&rec.SocialSecurityEmpPercentage)
	p.SocialSecurityCompanyPercentage.ApplyPtr(&rec.SocialSecurityCompanyPercentage)
	p.PriHealthcare.ApplyPtr(&rec.PriHealthcare)
	p.SecHealthcare.ApplyPtr(&rec.SecHealthcare)
	p.ProvideFundPercentage.ApplyPtr(&rec.ProvideFundPercentage)
	p.Fee.ApplyPtr(&rec.Fee)
	p.EstablishmentLocation.ApplyPtr(&rec.EstablishmentLocation)
	p.PaySLFIC.ApplyPtr(&rec.PaySLFIC)
	p.OtherDetails.ApplyPtr(&rec.OtherDetails)
	p.OtherExpenses.ApplyPtr(&rec.OtherExpenses)
	p.OtherPercentage.ApplyPtr(&rec.OtherPercentage)

	if err := patch.FirstErr(
		p.DeductSocialSecurity.Apply(&rec.DeductSocialSecurity, "deduct_social_security"),
		p.HasSocialSecurity.Apply(&rec.HasSocialSecurity, "has_social_security"),
		p.DeductSLFIC.Apply(&rec.DeductSLFIC, "deduct_SLF_IC"),
		p.HasOtherDetails.Apply(&rec.HasOtherDetails, "has_other_details"),
		patch.DatePtr(p.EnrollDate, &rec.EnrollDate, "enroll_date"),
	); err != nil {
		return err
	}

	for name, v := range map[string]*float64{
		"social_security_emp_percentage":     rec.SocialSecurityEmpPercentage,
		"social_security_company_percentage": rec.SocialSecurityCompanyPercentage,
		"provide_fund_percentage":            rec.ProvideFundPercentage,
		"other_percentage":                   rec.OtherPercentage,
	} {
		if v != nil && (*v < 0 || *v > 100) {
			return apperror.Invalid("%s must be between 0 and 100", name)
		}
	}
	return nil
}
