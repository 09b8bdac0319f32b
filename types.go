package persondir

import "time"

// Person is the root of the projected domain graph. The Student and Employee
// roles are optional one-to-one relations: a nil pointer means the person has
// no such record in the store, which is distinct from a present record whose
// fields are null. Callers test presence with HasStudent / HasEmployee.
type Person struct {
	NetID               string   `json:"net_id"`
	RegID               string   `json:"reg_id"`
	PriorNetIDs         []string `json:"prior_net_ids"`
	PriorRegIDs         []string `json:"prior_reg_ids"`
	Pronouns            *string  `json:"pronouns"`
	FullName            *string  `json:"full_name"`
	DisplayName         *string  `json:"display_name"`
	FirstName           *string  `json:"first_name"`
	Surname             *string  `json:"surname"`
	PreferredFirstName  *string  `json:"preferred_first_name"`
	PreferredMiddleName *string  `json:"preferred_middle_name"`
	PreferredSurname    *string  `json:"preferred_surname"`
	DirectoryPublish    bool     `json:"directory_publish"`
	ActiveStudent       bool     `json:"active_student"`
	ActiveEmployee      bool     `json:"active_employee"`

	Student  *Student  `json:"student,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

// HasStudent reports whether a student role was materialized for this person.
func (p *Person) HasStudent() bool { return p.Student != nil }

// HasEmployee reports whether an employee role was materialized for this person.
func (p *Person) HasEmployee() bool { return p.Employee != nil }

// Student is the student role of a person. Collection relations use a pointer
// to slice so that "relation not loaded" (nil, omitted from JSON) stays
// distinguishable from "relation loaded with zero rows" (present empty slice).
type Student struct {
	SystemKey               *string    `json:"system_key"`
	StudentNumber           *string    `json:"student_number"`
	Gender                  *string    `json:"gender"`
	BirthDate               *time.Time `json:"birthdate"`
	StudentEmail            *string    `json:"student_email"`
	ExternalEmail           *string    `json:"external_email"`
	LocalPhoneNumber        *string    `json:"local_phone_number"`
	CumulativeGPA           *float64   `json:"cumulative_gpa"`
	TotalCredits            *float64   `json:"total_credits"`
	TotalInstitutionCredits *float64   `json:"total_institution_credits"`
	CampusCode              *string    `json:"campus_code"`
	CampusDesc              *string    `json:"campus_desc"`
	ClassCode               *string    `json:"class_code"`
	ClassDesc               *string    `json:"class_desc"`
	ResidentCode            *string    `json:"resident_code"`
	ResidentDesc            *string    `json:"resident_desc"`
	EnrollStatusCode        *string    `json:"enroll_status_code"`
	PermAddrLine1           *string    `json:"perm_addr_line1"`
	PermAddrLine2           *string    `json:"perm_addr_line2"`
	PermAddrCity            *string    `json:"perm_addr_city"`
	PermAddrState           *string    `json:"perm_addr_state"`
	PermAddr5DigitZip       *string    `json:"perm_addr_5digit_zip"`
	PermAddr4DigitZip       *string    `json:"perm_addr_4digit_zip"`
	PermAddrCountry         *string    `json:"perm_addr_country"`
	PermAddrPostalCode      *string    `json:"perm_addr_postal_code"`
	RegisteredInQuarter     bool       `json:"registered_in_quarter"`

	AcademicTerm *Term `json:"academic_term,omitempty"`

	Majors          *[]Major      `json:"majors,omitempty"`
	IntendedMajors  *[]Major      `json:"intended_majors,omitempty"`
	PendingMajors   *[]Major      `json:"pending_majors,omitempty"`
	RequestedMajors *[]Major      `json:"requested_majors,omitempty"`
	Ethnicities     *[]Ethnicity  `json:"ethnicities,omitempty"`
	Sports          *[]Sport      `json:"sports,omitempty"`
	Advisers        *[]Person     `json:"advisers,omitempty"`
	Transcripts     *[]Transcript `json:"transcripts,omitempty"`
	Transfers       *[]Transfer   `json:"transfers,omitempty"`
	Holds           *[]Hold       `json:"holds,omitempty"`
	Degrees         *[]Degree     `json:"degrees,omitempty"`
}

// Employee is the employee role of a person. Adviser is an optional sub-role.
type Employee struct {
	EmployeeNumber    *string  `json:"employee_number"`
	AffiliationState  *string  `json:"employee_affiliation_state"`
	EmailAddresses    []string `json:"email_addresses"`
	HomeDepartment    *string  `json:"home_department"`
	PrimaryTitle      *string  `json:"primary_title"`
	PrimaryDepartment *string  `json:"primary_department"`

	Adviser *Adviser `json:"adviser,omitempty"`
}

// HasAdviser reports whether the adviser sub-role was materialized.
func (e *Employee) HasAdviser() bool { return e.Adviser != nil }

// Adviser is the advising sub-role of an employee.
type Adviser struct {
	IsDeptAdviser       *bool   `json:"is_dept_adviser"`
	AdvisingEmail       *string `json:"advising_email"`
	AdvisingPhoneNumber *string `json:"advising_phone_number"`
	AdvisingProgram     *string `json:"advising_program"`
	AdvisingPronouns    *string `json:"advising_pronouns"`
	BookingURL          *string `json:"booking_url"`
}

type Major struct {
	AbbrCode  *string `json:"major_abbr_code"`
	FullCode  *string `json:"major_full_code"`
	Name      *string `json:"major_name"`
	ShortName *string `json:"major_short_name"`
}

type Sport struct {
	SportCode *string `json:"sport_code"`
}

type Ethnicity struct {
	Code      *string `json:"ethnic_code"`
	Desc      *string `json:"ethnic_desc"`
	GroupDesc *string `json:"ethnic_group_desc"`
}

type Transcript struct {
	TranTerm         *Term      `json:"tran_term"`
	LeaveEndsTerm    *Term      `json:"leave_ends_term"`
	Resident         *string    `json:"resident"`
	ResidentCat      *string    `json:"resident_cat"`
	Veteran          *string    `json:"veteran"`
	VeteranBenefit   *string    `json:"veteran_benefit"`
	ClassCode        *string    `json:"class_code"`
	QtrGradePoints   float64    `json:"qtr_grade_points"`
	QtrGradedAttmp   float64    `json:"qtr_graded_attmp"`
	HonorsProgram    *string    `json:"honors_program"`
	SpecialProgram   *string    `json:"special_program"`
	ScholarshipType  *string    `json:"scholarship_type"`
	YearlyHonorType  *string    `json:"yearly_honor_type"`
	ExemptionCode    *string    `json:"exemption_code"`
	GradStatus       *string    `json:"grad_status"`
	NumIndStudy      *int       `json:"num_ind_study"`
	NumCourses       *int       `json:"num_courses"`
	EnrollStatus     *string    `json:"enroll_status"`
	TenthDayCredits  float64    `json:"tenth_day_credits"`
	EnrollStatusDate *time.Time `json:"enroll_status_date"`
}

type Transfer struct {
	InstitutionCode *string    `json:"institution_code"`
	InstitutionName *string    `json:"institution_name"`
	TransferGPA     *float64   `json:"transfer_gpa"`
	TransferCredits *float64   `json:"transfer_credits"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}

// Hold is a registration hold. Collections of holds are always ordered by
// ascending Seq.
type Hold struct {
	Seq        int        `json:"seq"`
	HoldDate   *time.Time `json:"hold_date"`
	OfficeCode *string    `json:"office_code"`
	OfficeDesc *string    `json:"office_desc"`
	ReasonCode *string    `json:"reason_code"`
	ReasonDesc *string    `json:"reason_desc"`
}

type Degree struct {
	Code       *string    `json:"degree_code"`
	Title      *string    `json:"degree_title"`
	LevelCode  *int       `json:"degree_level_code"`
	TypeCode   *int       `json:"degree_type_code"`
	Status     *int       `json:"degree_status"`
	DegreeDate *time.Time `json:"degree_date"`
	DegreeTerm *Term      `json:"degree_term"`
}

// Term is an academic {year, quarter} pair.
type Term struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

var quarterNames = map[int]string{
	1: "Winter",
	2: "Spring",
	3: "Summer",
	4: "Autumn",
}

// QuarterName returns the display name for the term's quarter. The second
// return value is false when the quarter is unset or out of range.
func (t Term) QuarterName() (string, bool) {
	name, ok := quarterNames[t.Quarter]
	return name, ok
}
