// Package models mirrors the person store schema. The store owns DDL and
// migrations; these declarations exist so the query layer can address the
// tables without hand-writing column lists per query. All relation fields are
// view-only (`->`): traversal never writes back through an association, even
// though the store declares cascade-delete foreign keys for its own
// integrity purposes.
package models

type Person struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	NetID               string `gorm:"column:net_id;uniqueIndex"`
	RegID               string `gorm:"column:reg_id;uniqueIndex"`
	Pronouns            *string
	FullName            *string
	DisplayName         *string
	FirstName           *string
	Surname             *string
	PreferredFirstName  *string
	PreferredMiddleName *string
	PreferredSurname    *string
	DirectoryPublish    bool

	// Derived flags sourced from the store, never computed here.
	IsActiveStudent  bool `gorm:"column:is_active_student"`
	IsActiveEmployee bool `gorm:"column:is_active_employee"`

	Student     *Student     `gorm:"->;foreignKey:PersonID"`
	Employee    *Employee    `gorm:"->;foreignKey:PersonID"`
	PriorNetIDs []PriorNetID `gorm:"->;foreignKey:PersonID"`
	PriorRegIDs []PriorRegID `gorm:"->;foreignKey:PersonID"`
}

func (Person) TableName() string { return "person" }

// PriorNetID maps a historical network ID back to its current person, so a
// lookup by any ID a person has ever held resolves to the same identity.
type PriorNetID struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PersonID int64  `gorm:"index"`
	NetID    string `gorm:"column:net_id;index"`
}

func (PriorNetID) TableName() string { return "prior_net_id" }

// PriorRegID maps a historical registry ID back to its current person.
type PriorRegID struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PersonID int64  `gorm:"index"`
	RegID    string `gorm:"column:reg_id;index"`
}

func (PriorRegID) TableName() string { return "prior_reg_id" }
