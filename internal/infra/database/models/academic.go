package models

import "time"

type Major struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AbbrCode  *string
	FullCode  *string
	Name      *string
	ShortName *string
}

func (Major) TableName() string { return "major" }

type Sport struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	SportCode *string
}

func (Sport) TableName() string { return "sport" }

type Ethnicity struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	EthnicCode      *string
	EthnicDesc      *string
	EthnicGroupDesc *string
}

func (Ethnicity) TableName() string { return "ethnicity" }

type Term struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	Year    int
	Quarter int
}

func (Term) TableName() string { return "term" }

// Transcript references two independent terms: the transcript term and the
// leave-ends term. Both foreign keys are nullable.
type Transcript struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	StudentID int64 `gorm:"index"`

	TranTermID      *int64
	TranTerm        *Term `gorm:"->;foreignKey:TranTermID"`
	LeaveEndsTermID *int64
	LeaveEndsTerm   *Term `gorm:"->;foreignKey:LeaveEndsTermID"`

	Resident         *string
	ResidentCat      *string
	Veteran          *string
	VeteranBenefit   *string
	ClassCode        *string
	QtrGradePoints   *float64 `gorm:"column:qtr_grade_points"`
	QtrGradedAttmp   *float64 `gorm:"column:qtr_graded_attmp"`
	HonorsProgram    *string
	SpecialProgram   *string
	ScholarshipType  *string
	YearlyHonorType  *string
	ExemptionCode    *string
	GradStatus       *string
	NumIndStudy      *int
	NumCourses       *int
	EnrollStatus     *string
	TenthDayCredits  *float64
	EnrollStatusDate *time.Time
}

func (Transcript) TableName() string { return "transcript" }

type Transfer struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	StudentID int64 `gorm:"index"`

	InstitutionCode *string
	InstitutionName *string
	TransferGPA     *float64 `gorm:"column:transfer_gpa"`
	TransferCredits *float64
	StartDate       *time.Time
	EndDate         *time.Time
}

func (Transfer) TableName() string { return "transfer" }

type Hold struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	StudentID int64 `gorm:"index"`

	Seq        int `gorm:"index"`
	HoldDate   *time.Time
	OfficeCode *string
	OfficeDesc *string
	ReasonCode *string
	ReasonDesc *string
}

func (Hold) TableName() string { return "hold" }

type Degree struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	StudentID int64 `gorm:"index"`

	Code         *string
	Title        *string
	LevelCode    *int
	TypeCode     *int
	Status       *int
	DegreeDate   *time.Time
	DegreeTermID *int64
	DegreeTerm   *Term `gorm:"->;foreignKey:DegreeTermID"`
}

func (Degree) TableName() string { return "degree" }

// All lists every mirrored table in dependency order. Production code never
// migrates the store (the store owns DDL); this exists for test databases.
func All() []any {
	return []any{
		&Person{},
		&PriorNetID{},
		&PriorRegID{},
		&Term{},
		&Major{},
		&Sport{},
		&Ethnicity{},
		&Student{},
		&Employee{},
		&Adviser{},
		&Transcript{},
		&Transfer{},
		&Hold{},
		&Degree{},
	}
}
