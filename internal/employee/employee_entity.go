package employee

import (
	"time"

	"gorm.io/datatypes"
)

// Section is one of the one-to-one records hanging off a user's emp_id.
type Section interface {
	TableName() string
	SectionName() string
}

const (
	SectionPersonalInfo        = "personal_info"
	SectionAddressInfo         = "address_info"
	SectionRegistrationAddress = "registration_address"
	SectionContactInfo         = "contact_info"
	SectionHiringInfo          = "hiring_info"
	SectionPaymentInfo         = "payment_info"
	SectionDeductionInfo       = "deduction_info"
)

type PersonalInfo struct {
	ID           uint            `gorm:"column:id;primaryKey"`
	EmpID        string          `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_personal_infos_emp_id"`
	NationID     string          `gorm:"column:nation_id;type:varchar(50);not null"`
	ThaiName     string          `gorm:"column:thai_name;type:varchar(100);not null"`
	EngName      string          `gorm:"column:eng_name;type:varchar(100);not null"`
	ThaiNickname string          `gorm:"column:thai_nickname;type:varchar(50);not null"`
	EngNickname  string          `gorm:"column:eng_nickname;type:varchar(50);not null"`
	Gender       string          `gorm:"column:gender;type:varchar(50);not null"`
	Nation       string          `gorm:"column:nation;type:varchar(100);not null"`
	Religion     *string         `gorm:"column:religion;type:varchar(50)"`
	DateBirth    *datatypes.Date `gorm:"column:date_birth"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (PersonalInfo) TableName() string   { return "personal_infos" }
func (PersonalInfo) SectionName() string { return SectionPersonalInfo }

// Address holds the columns shared by the current and registered addresses.
type Address struct {
	HouseNo     string  `gorm:"column:house_no;type:varchar(20);not null"`
	VillageNo   int     `gorm:"column:village_no;not null"`
	SubDistrict string  `gorm:"column:sub_district;type:varchar(50);not null"`
	District    string  `gorm:"column:district;type:varchar(50);not null"`
	Province    string  `gorm:"column:province;type:varchar(50);not null"`
	Zipcode     string  `gorm:"column:zipcode;type:varchar(20);not null"`
	Country     string  `gorm:"column:country;type:varchar(50);not null"`
	RoomNo      *string `gorm:"column:room_no;type:varchar(10)"`
	Floor       *int    `gorm:"column:floor"`
	Village     *string `gorm:"column:village;type:varchar(50)"`
	Building    *string `gorm:"column:building;type:varchar(50)"`
	Alley       *string `gorm:"column:alley;type:varchar(50)"`
	Road        *string `gorm:"column:road;type:varchar(50)"`
}

type AddressInfo struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	EmpID     string `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_address_infos_emp_id"`
	Address   `gorm:"embedded"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AddressInfo) TableName() string   { return "address_infos" }
func (AddressInfo) SectionName() string { return SectionAddressInfo }

type RegistrationAddress struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	EmpID     string `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_registration_addresses_emp_id"`
	Address   `gorm:"embedded"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (RegistrationAddress) TableName() string   { return "registration_addresses" }
func (RegistrationAddress) SectionName() string { return SectionRegistrationAddress }

// ContactInfo.Email mirrors users.email and is kept in step with it.
type ContactInfo struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	EmpID     string    `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_contact_infos_emp_id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Tel       string    `gorm:"column:tel;type:varchar(15);not null"`
	LineID    string    `gorm:"column:line_id;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ContactInfo) TableName() string   { return "contact_infos" }
func (ContactInfo) SectionName() string { return SectionContactInfo }

type HiringInfo struct {
	ID              uint            `gorm:"column:id;primaryKey"`
	EmpID           string          `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_hiring_infos_emp_id"`
	StartDate       datatypes.Date  `gorm:"column:start_date;not null"`
	ProbationDate   *datatypes.Date `gorm:"column:probation_date"`
	TerminateDate   *datatypes.Date `gorm:"column:terminate_date"`
	WorkingStatusID uint            `gorm:"column:working_status_id;not null;index"`
	EmployeeTypeID  uint            `gorm:"column:employee_type_id;not null;index"`
	ContractTypeID  uint            `gorm:"column:contract_type_id;not null;index"`
	CompanyID       uint            `gorm:"column:company_id;not null;index"`
	DepartmentID    uint            `gorm:"column:department_id;not null;index"`
	PositionID      uint            `gorm:"column:position_id;not null;index"`
	Manager         *string         `gorm:"column:manager;type:varchar(10);index"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (HiringInfo) TableName() string   { return "hiring_infos" }
func (HiringInfo) SectionName() string { return SectionHiringInfo }

type PaymentInfo struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	EmpID       string    `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_payment_infos_emp_id"`
	PaymentType string    `gorm:"column:payment_type;type:varchar(50);not null"`
	AccountNo   *string   `gorm:"column:account_no;type:varchar(20)"`
	Bank        *string   `gorm:"column:bank;type:varchar(50)"`
	AccountName *string   `gorm:"column:account_name;type:varchar(100)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (PaymentInfo) TableName() string   { return "payment_infos" }
func (PaymentInfo) SectionName() string { return SectionPaymentInfo }

type DeductionInfo struct {
	ID                              uint            `gorm:"column:id;primaryKey"`
	EmpID                           string          `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_deduction_infos_emp_id"`
	DeductSocialSecurity            bool            `gorm:"column:deduct_social_security;not null"`
	SocialSecurityCompany           *string         `gorm:"column:social_security_company;type:varchar(50)"`
	SocialSecurityEmpPercentage     *float64        `gorm:"column:social_security_emp_percentage"`
	SocialSecurityCompanyPercentage *float64        `gorm:"column:social_security_company_percentage"`
	EnrollDate                      *datatypes.Date `gorm:"column:enroll_date"`
	PriHealthcare                   *string         `gorm:"column:pri_healthcare;type:varchar(50)"`
	SecHealthcare                   *string         `gorm:"column:sec_healthcare;type:varchar(50)"`
	ProvideFundPercentage           *float64        `gorm:"column:provide_fund_percentage"`
	Fee                             *float64        `gorm:"column:fee"`
	HasSocialSecurity               bool            `gorm:"column:has_social_security;not null"`
	EstablishmentLocation           *string         `gorm:"column:establishment_location;type:varchar(50)"`
	DeductSLFIC                     bool            `gorm:"column:deduct_slf_ic;not null"`
	PaySLFIC                        *float64        `gorm:"column:pay_slf_ic"`
	HasOtherDetails                 bool            `gorm:"column:has_other_details;not null"`
	OtherDetails                    *string         `gorm:"column:other_details;type:varchar(100)"`
	OtherExpenses                   *float64        `gorm:"column:other_expenses"`
	OtherPercentage                 *float64        `gorm:"column:other_percentage"`
	CreatedAt                       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (DeductionInfo) TableName() string   { return "deduction_infos" }
func (DeductionInfo) SectionName() string { return SectionDeductionInfo }

// Models lists every employee table for AutoMigrate.
func Models() []any {
	return []any{
		&PersonalInfo{},
		&AddressInfo{},
		&RegistrationAddress{},
		&ContactInfo{},
		&HiringInfo{},
		&PaymentInfo{},
		&DeductionInfo{},
	}
}
