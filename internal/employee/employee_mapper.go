package employee

import (
	"strings"

	"go-hrfine/internal/shared/dateutil"
)

func (in PersonalInfoInput) toEntity(empID string) (*PersonalInfo, error) {
	birth, err := dateutil.ParseDatePtr("date_birth", in.DateBirth)
	if err != nil {
		return nil, err
	}
	return &PersonalInfo{
		EmpID:        empID,
		NationID:     strings.TrimSpace(in.NationID),
		ThaiName:     strings.TrimSpace(in.ThaiName),
		EngName:      strings.TrimSpace(in.EngName),
		ThaiNickname: strings.TrimSpace(in.ThaiNickname),
		EngNickname:  strings.TrimSpace(in.EngNickname),
		Gender:       in.Gender,
		Nation:       in.Nation,
		Religion:     in.Religion,
		DateBirth:    birth,
	}, nil
}

func (in AddressInput) toAddress() Address {
	return Address{
		HouseNo:     in.HouseNo,
		VillageNo:   in.VillageNo,
		SubDistrict: in.SubDistrict,
		District:    in.District,
		Province:    in.Province,
		Zipcode:     in.Zipcode,
		Country:     in.Country,
		RoomNo:      in.RoomNo,
		Floor:       in.Floor,
		Village:     in.Village,
		Building:    in.Building,
		Alley:       in.Alley,
		Road:        in.Road,
	}
}

func (in HiringInfoInput) toEntity(empID string) (*HiringInfo, error) {
	start, err := dateutil.ParseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	probation, err := dateutil.ParseDatePtr("probation_date", in.ProbationDate)
	if err != nil {
		return nil, err
	}
	terminate, err := dateutil.ParseDatePtr("terminate_date", in.TerminateDate)
	if err != nil {
		return nil, err
	}
	h := &HiringInfo{
		EmpID:           empID,
		StartDate:       start,
		ProbationDate:   probation,
		TerminateDate:   terminate,
		WorkingStatusID: in.WorkingStatusID,
		EmployeeTypeID:  in.EmployeeTypeID,
		ContractTypeID:  in.ContractTypeID,
		CompanyID:       in.CompanyID,
		DepartmentID:    in.DepartmentID,
		PositionID:      in.PositionID,
	}
	if in.Manager != nil && strings.TrimSpace(*in.Manager) != "" {
		m := strings.TrimSpace(*in.Manager)
		h.Manager = &m
	}
	return h, nil
}

func (in PaymentInfoInput) toEntity(empID string) *PaymentInfo {
	return &PaymentInfo{
		EmpID:       empID,
		PaymentType: in.PaymentType,
		AccountNo:   in.AccountNo,
		Bank:        in.Bank,
		AccountName: in.AccountName,
	}
}

func (in DeductionInfoInput) toEntity(empID string) (*DeductionInfo, error) {
	enroll, err := dateutil.ParseDatePtr("enroll_date", in.EnrollDate)
	if err != nil {
		return nil, err
	}
	return &DeductionInfo{
		EmpID:                           empID,
		DeductSocialSecurity:            in.DeductSocialSecurity,
		SocialSecurityCompany:           in.SocialSecurityCompany,
		SocialSecurityEmpPercentage:     in.SocialSecurityEmpPercentage,
		SocialSecurityCompanyPercentage: in.SocialSecurityCompanyPercentage,
		EnrollDate:                      enroll,
		PriHealthcare:                   in.PriHealthcare,
		SecHealthcare:                   in.SecHealthcare,
		ProvideFundPercentage:           in.ProvideFundPercentage,
		Fee:                             in.Fee,
		HasSocialSecurity:               in.HasSocialSecurity,
		EstablishmentLocation:           in.EstablishmentLocation,
		DeductSLFIC:                     in.DeductSLFIC,
		PaySLFIC:                        in.PaySLFIC,
		HasOtherDetails:                 in.HasOtherDetails,
		OtherDetails:                    in.OtherDetails,
		OtherExpenses:                   in.OtherExpenses,
		OtherPercentage:                 in.OtherPercentage,
	}, nil
}

func ToPersonalInfoResponse(p *PersonalInfo) *PersonalInfoResponse {
	if p == nil {
		return nil
	}
	return &PersonalInfoResponse{
		EmpID:        p.EmpID,
		NationID:     p.NationID,
		ThaiName:     p.ThaiName,
		EngName:      p.EngName,
		ThaiNickname: p.ThaiNickname,
		EngNickname:  p.EngNickname,
		Gender:       p.Gender,
		Nation:       p.Nation,
		Religion:     p.Religion,
		DateBirth:    dateutil.FormatDatePtr(p.DateBirth),
	}
}

func toAddressResponse(empID string, a Address) *AddressResponse {
	return &AddressResponse{
		EmpID:       empID,
		HouseNo:     a.HouseNo,
		VillageNo:   a.VillageNo,
		SubDistrict: a.SubDistrict,
		District:    a.District,
		Province:    a.Province,
		Zipcode:     a.Zipcode,
		Country:     a.Country,
		RoomNo:      a.RoomNo,
		Floor:       a.Floor,
		Village:     a.Village,
		Building:    a.Building,
		Alley:       a.Alley,
		Road:        a.Road,
	}
}

func ToAddressInfoResponse(a *AddressInfo) *AddressResponse {
	if a == nil {
		return nil
	}
	return toAddressResponse(a.EmpID, a.Address)
}

func ToRegistrationAddressResponse(a *RegistrationAddress) *AddressResponse {
	if a == nil {
		return nil
	}
	return toAddressResponse(a.EmpID, a.Address)
}

func ToContactInfoResponse(c *ContactInfo) *ContactInfoResponse {
	if c == nil {
		return nil
	}
	return &ContactInfoResponse{EmpID: c.EmpID, Email: c.Email, Tel: c.Tel, LineID: c.LineID}
}

func ToHiringInfoResponse(h *HiringInfo) *HiringInfoResponse {
	if h == nil {
		return nil
	}
	return &HiringInfoResponse{
		EmpID:           h.EmpID,
		StartDate:       dateutil.FormatDate(h.StartDate),
		ProbationDate:   dateutil.FormatDatePtr(h.ProbationDate),
		TerminateDate:   dateutil.FormatDatePtr(h.TerminateDate),
		WorkingStatusID: h.WorkingStatusID,
		EmployeeTypeID:  h.EmployeeTypeID,
		ContractTypeID:  h.ContractTypeID,
		CompanyID:       h.CompanyID,
		DepartmentID:    h.DepartmentID,
		PositionID:      h.PositionID,
		Manager:         h.Manager,
	}
}

func ToPaymentInfoResponse(p *PaymentInfo) *PaymentInfoResponse {
	if p == nil {
		return nil
	}
	return &PaymentInfoResponse{
		EmpID:       p.EmpID,
		PaymentType: p.PaymentType,
		AccountNo:   p.AccountNo,
		Bank:        p.Bank,
		AccountName: p.AccountName,
	}
}

func ToDeductionInfoResponse(d *DeductionInfo) *DeductionInfoResponse {
	if d == nil {
		return nil
	}
	return &DeductionInfoResponse{
		EmpID:                           d.EmpID,
		DeductSocialSecurity:            d.DeductSocialSecurity,
		SocialSecurityCompany:           d.SocialSecurityCompany,
		SocialSecurityEmpPercentage:     d.SocialSecurityEmpPercentage,
		SocialSecurityCompanyPercentage: d.SocialSecurityCompanyPercentage,
		EnrollDate:                      dateutil.FormatDatePtr(d.EnrollDate),
		PriHealthcare:                   d.PriHealthcare,
		SecHealthcare:                   d.SecHealthcare,
		ProvideFundPercentage:           d.ProvideFundPercentage,
		Fee:                             d.Fee,
		HasSocialSecurity:               d.HasSocialSecurity,
		EstablishmentLocation:           d.EstablishmentLocation,
		DeductSLFIC:                     d.DeductSLFIC,
		PaySLFIC:                        d.PaySLFIC,
		HasOtherDetails:                 d.HasOtherDetails,
		OtherDetails:                    d.OtherDetails,
		OtherExpenses:                   d.OtherExpenses,
		OtherPercentage:                 d.OtherPercentage,
	}
}
