package models

import "time"

// Student is the student role record, owned by exactly one person. The
// many-to-many edges go through explicitly declared join tables; foreign keys
// alone do not describe them, so they are layered on top of the mirrored
// schema here.
type Student struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	PersonID int64 `gorm:"index"`

	// Numeric in the store; projected as fixed-width zero-padded strings.
	SystemKey     int64 `gorm:"column:system_key;index"`
	StudentNumber int64 `gorm:"column:student_number;index"`

	Gender                  *string
	BirthDate               *time.Time
	StudentEmail            *string
	ExternalEmail           *string
	LocalPhoneNumber        *string
	CumulativeGPA           *float64 `gorm:"column:cumulative_gpa"`
	TotalCredits            *float64
	TotalInstitutionCredits *float64
	CampusCode              *string
	CampusDesc              *string
	ClassCode               *string
	ClassDesc               *string
	ResidentCode            *string
	ResidentDesc            *string
	EnrollStatusCode        *string `gorm:"column:enroll_status_code;index"`
	PermAddrLine1           *string
	PermAddrLine2           *string
	PermAddrCity            *string
	PermAddrState           *string
	PermAddr5DigitZip       *string `gorm:"column:perm_addr_5digit_zip"`
	PermAddr4DigitZip       *string `gorm:"column:perm_addr_4digit_zip"`
	PermAddrCountry         *string
	PermAddrPostalCode      *string
	RegisteredInQuarter     bool

	AcademicTermID *int64
	AcademicTerm   *Term `gorm:"->;foreignKey:AcademicTermID"`

	Majors          []Major     `gorm:"->;many2many:student_to_major"`
	IntendedMajors  []Major     `gorm:"->;many2many:student_to_intended_major"`
	PendingMajors   []Major     `gorm:"->;many2many:student_to_pending_major"`
	RequestedMajors []Major     `gorm:"->;many2many:student_to_requested_major"`
	Sports          []Sport     `gorm:"->;many2many:student_to_sport"`
	Ethnicities     []Ethnicity `gorm:"->;many2many:student_to_ethnicity"`
	Advisers        []Adviser   `gorm:"->;many2many:student_to_adviser"`

	Transcripts []Transcript `gorm:"->;foreignKey:StudentID"`
	Transfers   []Transfer   `gorm:"->;foreignKey:StudentID"`
	Holds       []Hold       `gorm:"->;foreignKey:StudentID"`
	Degrees     []Degree     `gorm:"->;foreignKey:StudentID"`
}

func (Student) TableName() string { return "student" }
