package employee

import (
	"time"

	"go-hrfine/internal/shared/dateutil"
	"go-hrfine/internal/shared/patch"
)

// SubmitAllRequest is the onboarding payload. The camelCase group keys are
// what the admin front end posts.
type SubmitAllRequest struct {
	EmpID       string       `json:"emp_id" binding:"required,max=10"`
	UserInfo    UserInfo     `json:"userInfo" binding:"required"`
	HiringInfo  HiringGroup  `json:"hiringInfo" binding:"required"`
	PaymentInfo PaymentGroup `json:"paymentInfo" binding:"required"`
}

type UserInfo struct {
	PersonalInfo        *PersonalInfoInput `json:"personal_info" binding:"required"`
	AddressInfo         *AddressInput      `json:"address_info"`
	RegistrationAddress *AddressInput      `json:"registration_address"`
	ContactInfo         *ContactInfoInput  `json:"contact_info"`
}

type HiringGroup struct {
	HiringInfo *HiringInfoInput `json:"hiring_info" binding:"required"`
}

type PaymentGroup struct {
	PaymentInfo   *PaymentInfoInput   `json:"payment_info" binding:"required"`
	DeductionInfo *DeductionInfoInput `json:"deduction_info"`
}

type PersonalInfoInput struct {
	NationID     string  `json:"nation_id" binding:"required,max=50"`
	ThaiName     string  `json:"thai_name" binding:"required,max=100"`
	EngName      string  `json:"eng_name" binding:"required,max=100"`
	ThaiNickname string  `json:"thai_nickname" binding:"required,max=50"`
	EngNickname  string  `json:"eng_nickname" binding:"required,max=50"`
	Gender       string  `json:"gender" binding:"required,max=50"`
	Nation       string  `json:"nation" binding:"required,max=100"`
	Religion     *string `json:"religion" binding:"omitempty,max=50"`
	DateBirth    *string `json:"date_birth"`
}

type AddressInput struct {
	HouseNo     string  `json:"house_no" binding:"required,max=20"`
	VillageNo   int     `json:"village_no" binding:"gte=0"`
	SubDistrict string  `json:"sub_district" binding:"required,max=50"`
	District    string  `json:"district" binding:"required,max=50"`
	Province    string  `json:"province" binding:"required,max=50"`
	Zipcode     string  `json:"zipcode" binding:"required,max=20"`
	Country     string  `json:"country" binding:"required,max=50"`
	RoomNo      *string `json:"room_no" binding:"omitempty,max=10"`
	Floor       *int    `json:"floor"`
	Village     *string `json:"village" binding:"omitempty,max=50"`
	Building    *string `json:"building" binding:"omitempty,max=50"`
	Alley       *string `json:"alley" binding:"omitempty,max=50"`
	Road        *string `json:"road" binding:"omitempty,max=50"`
}

type ContactInfoInput struct {
	Tel    string `json:"tel" binding:"required,max=15"`
	LineID string `json:"line_id" binding:"required,max=50"`
}

type HiringInfoInput struct {
	StartDate       string  `json:"start_date" binding:"required"`
	ProbationDate   *string `json:"probation_date"`
	TerminateDate   *string `json:"terminate_date"`
	WorkingStatusID uint    `json:"working_status_id" binding:"required"`
	EmployeeTypeID  uint    `json:"employee_type_id" binding:"required"`
	ContractTypeID  uint    `json:"contract_type_id" binding:"required"`
	CompanyID       uint    `json:"company_id" binding:"required"`
	DepartmentID    uint    `json:"department_id" binding:"required"`
	PositionID      uint    `json:"position_id" binding:"required"`
	Manager         *string `json:"manager" binding:"omitempty,max=10"`
}

type PaymentInfoInput struct {
	PaymentType string  `json:"payment_type" binding:"required,max=50"`
	AccountNo   *string `json:"account_no" binding:"omitempty,max=20"`
	Bank        *string `json:"bank" binding:"omitempty,max=50"`
	AccountName *string `json:"account_name" binding:"omitempty,max=100"`
}

type DeductionInfoInput struct {
	DeductSocialSecurity            bool     `json:"deduct_social_security"`
	SocialSecurityCompany           *string  `json:"social_security_company" binding:"omitempty,max=50"`
	SocialSecurityEmpPercentage     *float64 `json:"social_security_emp_percentage" binding:"omitempty,gte=0,lte=100"`
	SocialSecurityCompanyPercentage *float64 `json:"social_security_company_percentage" binding:"omitempty,gte=0,lte=100"`
	EnrollDate                      *string  `json:"enroll_date"`
	PriHealthcare                   *string  `json:"pri_healthcare" binding:"omitempty,max=50"`
	SecHealthcare                   *string  `json:"sec_healthcare" binding:"omitempty,max=50"`
	ProvideFundPercentage           *float64 `json:"provide_fund_percentage" binding:"omitempty,gte=0,lte=100"`
	Fee                             *float64 `json:"fee" binding:"omitempty,gte=0"`
	HasSocialSecurity               bool     `json:"has_social_security"`
	EstablishmentLocation           *string  `json:"establishment_location" binding:"omitempty,max=50"`
	DeductSLFIC                     bool     `json:"deduct_SLF_IC"`
	PaySLFIC                        *float64 `json:"pay_SLF_IC" binding:"omitempty,gte=0"`
	HasOtherDetails                 bool     `json:"has_other_details"`
	OtherDetails                    *string  `json:"other_details" binding:"omitempty,max=100"`
	OtherExpenses                   *float64 `json:"other_expenses" binding:"omitempty,gte=0"`
	OtherPercentage                 *float64 `json:"other_percentage" binding:"omitempty,gte=0,lte=100"`
}

// Patch payloads. Every field is optional; only fields present in the body
// are written.

type PersonalInfoPatch struct {
	NationID     patch.Field[string] `json:"nation_id"`
	ThaiName     patch.Field[string] `json:"thai_name"`
	EngName      patch.Field[string] `json:"eng_name"`
	ThaiNickname patch.Field[string] `json:"thai_nickname"`
	EngNickname  patch.Field[string] `json:"eng_nickname"`
	Gender       patch.Field[string] `json:"gender"`
	Nation       patch.Field[string] `json:"nation"`
	Religion     patch.Field[string] `json:"religion"`
	DateBirth    patch.Field[string] `json:"date_birth"`
}

type AddressPatch struct {
	HouseNo     patch.Field[string] `json:"house_no"`
	VillageNo   patch.Field[int]    `json:"village_no"`
	SubDistrict patch.Field[string] `json:"sub_district"`
	District    patch.Field[string] `json:"district"`
	Province    patch.Field[string] `json:"province"`
	Zipcode     patch.Field[string] `json:"zipcode"`
	Country     patch.Field[string] `json:"country"`
	RoomNo      patch.Field[string] `json:"room_no"`
	Floor       patch.Field[int]    `json:"floor"`
	Village     patch.Field[string] `json:"village"`
	Building    patch.Field[string] `json:"building"`
	Alley       patch.Field[string] `json:"alley"`
	Road        patch.Field[string] `json:"road"`
}

type ContactInfoPatch struct {
	Email  patch.Field[string] `json:"email"`
	Tel    patch.Field[string] `json:"tel"`
	LineID patch.Field[string] `json:"line_id"`
}

type HiringInfoPatch struct {
	StartDate       patch.Field[string] `json:"start_date"`
	ProbationDate   patch.Field[string] `json:"probation_date"`
	TerminateDate   patch.Field[string] `json:"terminate_date"`
	WorkingStatusID patch.Field[uint]   `json:"working_status_id"`
	EmployeeTypeID  patch.Field[uint]   `json:"employee_type_id"`
	ContractTypeID  patch.Field[uint]   `json:"contract_type_id"`
	CompanyID       patch.Field[uint]   `json:"company_id"`
	DepartmentID    patch.Field[uint]   `json:"department_id"`
	PositionID      patch.Field[uint]   `json:"position_id"`
	Manager         patch.Field[string] `json:"manager"`
}

type PaymentInfoPatch struct {
	PaymentType patch.Field[string] `json:"payment_type"`
	AccountNo   patch.Field[string] `json:"account_no"`
	Bank        patch.Field[string] `json:"bank"`
	AccountName patch.Field[string] `json:"account_name"`
}

type DeductionInfoPatch struct {
	DeductSocialSecurity            patch.Field[bool]    `json:"deduct_social_security"`
	SocialSecurityCompany           patch.Field[string]  `json:"social_security_company"`
	SocialSecurityEmpPercentage     patch.Field[float64] `json:"social_security_emp_percentage"`
	SocialSecurityCompanyPercentage patch.Field[float64] `json:"social_security_company_percentage"`
	EnrollDate                      patch.Field[string]  `json:"enroll_date"`
	PriHealthcare                   patch.Field[string]  `json:"pri_healthcare"`
	SecHealthcare                   patch.Field[string]  `json:"sec_healthcare"`
	ProvideFundPercentage           patch.Field[float64] `json:"provide_fund_percentage"`
	Fee                             patch.Field[float64] `json:"fee"`
	HasSocialSecurity               patch.Field[bool]    `json:"has_social_security"`
	EstablishmentLocation           patch.Field[string]  `json:"establishment_location"`
	DeductSLFIC                     patch.Field[bool]    `json:"deduct_SLF_IC"`
	PaySLFIC                        patch.Field[float64] `json:"pay_SLF_IC"`
	HasOtherDetails                 patch.Field[bool]    `json:"has_other_details"`
	OtherDetails                    patch.Field[string]  `json:"other_details"`
	OtherExpenses                   patch.Field[float64] `json:"other_expenses"`
	OtherPercentage                 patch.Field[float64] `json:"other_percentage"`
}

type PersonalInfoResponse struct {
	EmpID        string  `json:"emp_id"`
	NationID     string  `json:"nation_id"`
	ThaiName     string  `json:"thai_name"`
	EngName      string  `json:"eng_name"`
	ThaiNickname string  `json:"thai_nickname"`
	EngNickname  string  `json:"eng_nickname"`
	Gender       string  `json:"gender"`
	Nation       string  `json:"nation"`
	Religion     *string `json:"religion"`
	DateBirth    *string `json:"date_birth"`
}

type AddressResponse struct {
	EmpID       string  `json:"emp_id"`
	HouseNo     string  `json:"house_no"`
	VillageNo   int     `json:"village_no"`
	SubDistrict string  `json:"sub_district"`
	District    string  `json:"district"`
	Province    string  `json:"province"`
	Zipcode     string  `json:"zipcode"`
	Country     string  `json:"country"`
	RoomNo      *string `json:"room_no"`
	Floor       *int    `json:"floor"`
	Village     *string `json:"village"`
	Building    *string `json:"building"`
	Alley       *string `json:"alley"`
	Road        *string `json:"road"`
}

type ContactInfoResponse struct {
	EmpID  string `json:"emp_id"`
	Email  string `json:"email"`
	Tel    string `json:"tel"`
	LineID string `json:"line_id"`
}

type HiringInfoResponse struct {
	EmpID           string  `json:"emp_id"`
	StartDate       string  `json:"start_date"`
	ProbationDate   *string `json:"probation_date"`
	TerminateDate   *string `json:"terminate_date"`
	WorkingStatusID uint    `json:"working_status_id"`
	EmployeeTypeID  uint    `json:"employee_type_id"`
	ContractTypeID  uint    `json:"contract_type_id"`
	CompanyID       uint    `json:"company_id"`
	DepartmentID    uint    `json:"department_id"`
	PositionID      uint    `json:"position_id"`
	Manager         *string `json:"manager"`
}

type PaymentInfoResponse struct {
	EmpID       string  `json:"emp_id"`
	PaymentType string  `json:"payment_type"`
	AccountNo   *string `json:"account_no"`
	Bank        *string `json:"bank"`
	AccountName *string `json:"account_name"`
}

type DeductionInfoResponse struct {
	EmpID                           string   `json:"emp_id"`
	DeductSocialSecurity            bool     `json:"deduct_social_security"`
	SocialSecurityCompany           *string  `json:"social_security_company"`
	SocialSecurityEmpPercentage     *float64 `json:"social_security_emp_percentage"`
	SocialSecurityCompanyPercentage *float64 `json:"social_security_company_percentage"`
	EnrollDate                      *string  `json:"enroll_date"`
	PriHealthcare                   *string  `json:"pri_healthcare"`
	SecHealthcare                   *string  `json:"sec_healthcare"`
	ProvideFundPercentage           *float64 `json:"provide_fund_percentage"`
	Fee                             *float64 `json:"fee"`
	HasSocialSecurity               bool     `json:"has_social_security"`
	EstablishmentLocation           *string  `json:"establishment_location"`
	DeductSLFIC                     bool     `json:"deduct_SLF_IC"`
	PaySLFIC                        *float64 `json:"pay_SLF_IC"`
	HasOtherDetails                 bool     `json:"has_other_details"`
	OtherDetails                    *string  `json:"other_details"`
	OtherExpenses                   *float64 `json:"other_expenses"`
	OtherPercentage                 *float64 `json:"other_percentage"`
}

// EmployeeDetail is everything on file for one emp_id. Sections not yet
// submitted are null.
type EmployeeDetail struct {
	EmpID               string                 `json:"emp_id"`
	Email               string                 `json:"email"`
	Role                string                 `json:"role"`
	PersonalInfo        *PersonalInfoResponse  `json:"personal_info"`
	AddressInfo         *AddressResponse       `json:"address_info"`
	RegistrationAddress *AddressResponse       `json:"registration_address"`
	ContactInfo         *ContactInfoResponse   `json:"contact_info"`
	HiringInfo          *HiringInfoResponse    `json:"hiring_info"`
	PaymentInfo         *PaymentInfoResponse   `json:"payment_info"`
	DeductionInfo       *DeductionInfoResponse `json:"deduction_info"`
}

// SummaryRow is the joined list projection read by the repository.
type SummaryRow struct {
	EmpID         string
	Email         string
	Role          string
	ThaiName      *string
	EngName       *string
	EngNickname   *string
	Department    *string
	Position      *string
	WorkingStatus *string
	StartDate     *time.Time
}

type EmployeeSummary struct {
	EmpID         string  `json:"emp_id"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	ThaiName      *string `json:"thai_name"`
	EngName       *string `json:"eng_name"`
	EngNickname   *string `json:"eng_nickname"`
	Department    *string `json:"department"`
	Position      *string `json:"position"`
	WorkingStatus *string `json:"working_status"`
	StartDate     *string `json:"start_date"`
}

type ManagerOption struct {
	EmpID       string `json:"emp_id"`
	ThaiName    string `json:"thai_name"`
	EngName     string `json:"eng_name"`
	EngNickname string `json:"eng_nickname"`
}

func (r SummaryRow) toSummary() EmployeeSummary {
	s := EmployeeSummary{
		EmpID:         r.EmpID,
		Email:         r.Email,
		Role:          r.Role,
		ThaiName:      r.ThaiName,
		EngName:       r.EngName,
		EngNickname:   r.EngNickname,
		Department:    r.Department,
		Position:      r.Position,
		WorkingStatus: r.WorkingStatus,
	}
	if r.StartDate != nil {
		d := r.StartDate.Format(dateutil.DateLayout)
		s.StartDate = &d
	}
	return s
}
