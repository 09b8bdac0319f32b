package models

// Employee is the employee role record, owned by exactly one person.
type Employee struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	PersonID int64   `gorm:"index"`
	Person   *Person `gorm:"->;foreignKey:PersonID;references:ID"`

	EmployeeNumber    *string
	AffiliationState  *string  `gorm:"column:employee_affiliation_state"`
	EmailAddresses    []string `gorm:"column:email_addresses;serializer:json"`
	HomeDepartment    *string
	PrimaryTitle      *string
	PrimaryDepartment *string

	Adviser *Adviser `gorm:"->;foreignKey:EmployeeID"`
}

func (Employee) TableName() string { return "employee" }

// Adviser is the advising sub-role of an employee. The advised-student set is
// reached through the student_to_adviser join table.
type Adviser struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"index"`
	Employee   *Employee `gorm:"->;foreignKey:EmployeeID;references:ID"`

	IsDeptAdviser       *bool
	AdvisingEmail       *string
	AdvisingPhoneNumber *string
	AdvisingProgram     *string `gorm:"index"`
	AdvisingPronouns    *string
	BookingURL          *string `gorm:"column:booking_url"`
}

func (Adviser) TableName() string { return "adviser" }
