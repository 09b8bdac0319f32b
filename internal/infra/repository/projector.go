package repository

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"persondir"
	"persondir/internal/infra/database/models"
)

// projector walks one fetched person row and its related rows and produces
// the nested domain object, honoring the per-relation inclusion toggles.
// Disabled relations are never queried. Any relation that fails to load
// fails the whole projection; nothing is silently omitted.
type projector struct {
	db *gorm.DB
}

func newProjector(db *gorm.DB) *projector {
	return &projector{db: db}
}

func (p *projector) person(ctx context.Context, m *models.Person, inc persondir.Include) (*persondir.Person, error) {
	out := &persondir.Person{
		NetID:               m.NetID,
		RegID:               m.RegID,
		Pronouns:            m.Pronouns,
		FullName:            m.FullName,
		DisplayName:         m.DisplayName,
		FirstName:           m.FirstName,
		Surname:             m.Surname,
		PreferredFirstName:  m.PreferredFirstName,
		PreferredMiddleName: m.PreferredMiddleName,
		PreferredSurname:    m.PreferredSurname,
		DirectoryPublish:    m.DirectoryPublish,
		ActiveStudent:       m.IsActiveStudent,
		ActiveEmployee:      m.IsActiveEmployee,
	}

	var priorNet []models.PriorNetID
	if err := p.db.WithContext(ctx).Where("person_id = ?", m.ID).Order("id").Find(&priorNet).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "load prior network ids")
	}
	out.PriorNetIDs = make([]string, 0, len(priorNet))
	for _, pn := range priorNet {
		out.PriorNetIDs = append(out.PriorNetIDs, pn.NetID)
	}

	var priorReg []models.PriorRegID
	if err := p.db.WithContext(ctx).Where("person_id = ?", m.ID).Order("id").Find(&priorReg).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "load prior registry ids")
	}
	out.PriorRegIDs = make([]string, 0, len(priorReg))
	for _, pr := range priorReg {
		out.PriorRegIDs = append(out.PriorRegIDs, pr.RegID)
	}

	if inc.Enabled(persondir.IncludeStudent) {
		student, err := p.student(ctx, m.ID, inc)
		if err != nil {
			return nil, err
		}
		out.Student = student
	}

	if inc.Enabled(persondir.IncludeEmployee) {
		employee, err := p.employee(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Employee = employee
	}

	return out, nil
}

// student returns nil when the person has no student record, so the domain
// attribute stays entirely absent rather than an empty placeholder.
func (p *projector) student(ctx context.Context, personID int64, inc persondir.Include) (*persondir.Student, error) {
	var m models.Student
	err := p.db.WithContext(ctx).Where("person_id = ?", personID).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "load student")
	}

	out := &persondir.Student{
		SystemKey:               fixedWidthString(m.SystemKey, persondir.SystemKeyWidth),
		StudentNumber:           fixedWidthString(m.StudentNumber, persondir.StudentNumberWidth),
		Gender:                  m.Gender,
		BirthDate:               m.BirthDate,
		StudentEmail:            m.StudentEmail,
		ExternalEmail:           m.ExternalEmail,
		LocalPhoneNumber:        m.LocalPhoneNumber,
		CumulativeGPA:           m.CumulativeGPA,
		TotalCredits:            m.TotalCredits,
		TotalInstitutionCredits: m.TotalInstitutionCredits,
		CampusCode:              m.CampusCode,
		CampusDesc:              m.CampusDesc,
		ClassCode:               m.ClassCode,
		ClassDesc:               m.ClassDesc,
		ResidentCode:            m.ResidentCode,
		ResidentDesc:            m.ResidentDesc,
		EnrollStatusCode:        m.EnrollStatusCode,
		PermAddrLine1:           m.PermAddrLine1,
		PermAddrLine2:           m.PermAddrLine2,
		PermAddrCity:            m.PermAddrCity,
		PermAddrState:           m.PermAddrState,
		PermAddr5DigitZip:       m.PermAddr5DigitZip,
		PermAddr4DigitZip:       m.PermAddr4DigitZip,
		PermAddrCountry:         m.PermAddrCountry,
		PermAddrPostalCode:      m.PermAddrPostalCode,
		RegisteredInQuarter:     m.RegisteredInQuarter,
	}

	if m.AcademicTermID != nil {
		term, err := p.term(ctx, *m.AcademicTermID)
		if err != nil {
			return nil, err
		}
		out.AcademicTerm = term
	}

	if inc.Enabled(persondir.IncludeMajors) {
		majors, err := p.majorsVia(ctx, "student_to_major", m.ID)
		if err != nil {
			return nil, err
		}
		out.Majors = majors
	}
	if inc.Enabled(persondir.IncludeIntendedMajors) {
		majors, err := p.majorsVia(ctx, "student_to_intended_major", m.ID)
		if err != nil {
			return nil, err
		}
		out.IntendedMajors = majors
	}
	if inc.Enabled(persondir.IncludePendingMajors) {
		majors, err := p.majorsVia(ctx, "student_to_pending_major", m.ID)
		if err != nil {
			return nil, err
		}
		out.PendingMajors = majors
	}
	if inc.Enabled(persondir.IncludeRequestedMajors) {
		majors, err := p.majorsVia(ctx, "student_to_requested_major", m.ID)
		if err != nil {
			return nil, err
		}
		out.RequestedMajors = majors
	}

	if inc.Enabled(persondir.IncludeEthnicities) {
		ethnicities, err := p.ethnicities(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Ethnicities = ethnicities
	}

	if inc.Enabled(persondir.IncludeSports) {
		sports, err := p.sports(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Sports = sports
	}

	if inc.Enabled(persondir.IncludeAdvisers) {
		advisers, err := p.advisers(ctx, m.ID, inc)
		if err != nil {
			return nil, err
		}
		out.Advisers = advisers
	}

	if inc.Enabled(persondir.IncludeTranscripts) {
		transcripts, err := p.transcripts(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Transcripts = transcripts
	}

	if inc.Enabled(persondir.IncludeTransfers) {
		transfers, err := p.transfers(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Transfers = transfers
	}

	if inc.Enabled(persondir.IncludeHolds) {
		holds, err := p.holds(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Holds = holds
	}

	if inc.Enabled(persondir.IncludeDegrees) {
		degrees, err := p.degrees(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out.Degrees = degrees
	}

	return out, nil
}

func (p *projector) employee(ctx context.Context, personID int64) (*persondir.Employee, error) {
	var m models.Employee
	err := p.db.WithContext(ctx).Where("person_id = ?", personID).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "load employee")
	}

	out := &persondir.Employee{
		EmployeeNumber:    m.EmployeeNumber,
		AffiliationState:  m.AffiliationState,
		EmailAddresses:    m.EmailAddresses,
		HomeDepartment:    m.HomeDepartment,
		PrimaryTitle:      m.PrimaryTitle,
		PrimaryDepartment: m.PrimaryDepartment,
	}

	var adviser models.Adviser
	err = p.db.WithContext(ctx).Where("employee_id = ?", m.ID).Take(&adviser).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(err, "load adviser")
		}
		return out, nil
	}
	out.Adviser = &persondir.Adviser{
		IsDeptAdviser:       adviser.IsDeptAdviser,
		AdvisingEmail:       adviser.AdvisingEmail,
		AdvisingPhoneNumber: adviser.AdvisingPhoneNumber,
		AdvisingProgram:     adviser.AdvisingProgram,
		AdvisingPronouns:    adviser.AdvisingPronouns,
		BookingURL:          adviser.BookingURL,
	}
	return out, nil
}

// advisers projects the advising persons of a student. The nested adviser
// person never re-includes its own student role; the remaining toggles keep
// their caller-supplied values.
func (p *projector) advisers(ctx context.Context, studentID int64, inc persondir.Include) (*[]persondir.Person, error) {
	var rows []models.Adviser
	err := p.db.WithContext(ctx).
		Joins("JOIN student_to_adviser ON student_to_adviser.adviser_id = adviser.id").
		Where("student_to_adviser.student_id = ?", studentID).
		Order("adviser.id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load advisers")
	}

	nested := inc.With(persondir.IncludeStudent, false)
	out := make([]persondir.Person, 0, len(rows))
	for _, adv := range rows {
		var em models.Employee
		if err := p.db.WithContext(ctx).Take(&em, adv.EmployeeID).Error; err != nil {
			return nil, pkgerrors.Wrapf(err, "load employee for adviser %d", adv.ID)
		}
		var person models.Person
		if err := p.db.WithContext(ctx).Take(&person, em.PersonID).Error; err != nil {
			return nil, pkgerrors.Wrapf(err, "load person for adviser %d", adv.ID)
		}
		projected, err := p.person(ctx, &person, nested)
		if err != nil {
			return nil, err
		}
		out = append(out, *projected)
	}
	return &out, nil
}

func (p *projector) majorsVia(ctx context.Context, joinTable string, studentID int64) (*[]persondir.Major, error) {
	var rows []models.Major
	err := p.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN %s ON %s.major_id = major.id", joinTable, joinTable)).
		Where(joinTable+".student_id = ?", studentID).
		Order("major.id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load majors via %s", joinTable)
	}
	out := make([]persondir.Major, 0, len(rows))
	for _, m := range rows {
		out = append(out, persondir.Major{
			AbbrCode:  m.AbbrCode,
			FullCode:  m.FullCode,
			Name:      m.Name,
			ShortName: m.ShortName,
		})
	}
	return &out, nil
}

func (p *projector) sports(ctx context.Context, studentID int64) (*[]persondir.Sport, error) {
	var rows []models.Sport
	err := p.db.WithContext(ctx).
		Joins("JOIN student_to_sport ON student_to_sport.sport_id = sport.id").
		Where("student_to_sport.student_id = ?", studentID).
		Order("sport.id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load sports")
	}
	out := make([]persondir.Sport, 0, len(rows))
	for _, s := range rows {
		out = append(out, persondir.Sport{SportCode: s.SportCode})
	}
	return &out, nil
}

func (p *projector) ethnicities(ctx context.Context, studentID int64) (*[]persondir.Ethnicity, error) {
	var rows []models.Ethnicity
	err := p.db.WithContext(ctx).
		Joins("JOIN student_to_ethnicity ON student_to_ethnicity.ethnicity_id = ethnicity.id").
		Where("student_to_ethnicity.student_id = ?", studentID).
		Order("ethnicity.id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load ethnicities")
	}
	out := make([]persondir.Ethnicity, 0, len(rows))
	for _, e := range rows {
		out = append(out, persondir.Ethnicity{
			Code:      e.EthnicCode,
			Desc:      e.EthnicDesc,
			GroupDesc: e.EthnicGroupDesc,
		})
	}
	return &out, nil
}

func (p *projector) transcripts(ctx context.Context, studentID int64) (*[]persondir.Transcript, error) {
	var rows []models.Transcript
	err := p.db.WithContext(ctx).
		Preload("TranTerm").
		Preload("LeaveEndsTerm").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load transcripts")
	}
	out := make([]persondir.Transcript, 0, len(rows))
	for _, t := range rows {
		out = append(out, persondir.Transcript{
			TranTerm:         mapTerm(t.TranTerm),
			LeaveEndsTerm:    mapTerm(t.LeaveEndsTerm),
			Resident:         t.Resident,
			ResidentCat:      t.ResidentCat,
			Veteran:          t.Veteran,
			VeteranBenefit:   t.VeteranBenefit,
			ClassCode:        t.ClassCode,
			QtrGradePoints:   coerceFloat(t.QtrGradePoints),
			QtrGradedAttmp:   coerceFloat(t.QtrGradedAttmp),
			HonorsProgram:    t.HonorsProgram,
			SpecialProgram:   t.SpecialProgram,
			ScholarshipType:  t.ScholarshipType,
			YearlyHonorType:  t.YearlyHonorType,
			ExemptionCode:    t.ExemptionCode,
			GradStatus:       t.GradStatus,
			NumIndStudy:      t.NumIndStudy,
			NumCourses:       t.NumCourses,
			EnrollStatus:     t.EnrollStatus,
			TenthDayCredits:  coerceFloat(t.TenthDayCredits),
			EnrollStatusDate: t.EnrollStatusDate,
		})
	}
	return &out, nil
}

func (p *projector) transfers(ctx context.Context, studentID int64) (*[]persondir.Transfer, error) {
	var rows []models.Transfer
	err := p.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load transfers")
	}
	out := make([]persondir.Transfer, 0, len(rows))
	for _, t := range rows {
		out = append(out, persondir.Transfer{
			InstitutionCode: t.InstitutionCode,
			InstitutionName: t.InstitutionName,
			TransferGPA:     t.TransferGPA,
			TransferCredits: t.TransferCredits,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
		})
	}
	return &out, nil
}

func (p *projector) holds(ctx context.Context, studentID int64) (*[]persondir.Hold, error) {
	var rows []models.Hold
	err := p.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("seq asc").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load holds")
	}
	out := make([]persondir.Hold, 0, len(rows))
	for _, h := range rows {
		out = append(out, persondir.Hold{
			Seq:        h.Seq,
			HoldDate:   h.HoldDate,
			OfficeCode: h.OfficeCode,
			OfficeDesc: h.OfficeDesc,
			ReasonCode: h.ReasonCode,
			ReasonDesc: h.ReasonDesc,
		})
	}
	return &out, nil
}

func (p *projector) degrees(ctx context.Context, studentID int64) (*[]persondir.Degree, error) {
	var rows []models.Degree
	err := p.db.WithContext(ctx).
		Preload("DegreeTerm").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load degrees")
	}
	out := make([]persondir.Degree, 0, len(rows))
	for _, d := range rows {
		out = append(out, persondir.Degree{
			Code:       d.Code,
			Title:      d.Title,
			LevelCode:  d.LevelCode,
			TypeCode:   d.TypeCode,
			Status:     d.Status,
			DegreeDate: d.DegreeDate,
			DegreeTerm: mapTerm(d.DegreeTerm),
		})
	}
	return &out, nil
}

func (p *projector) term(ctx context.Context, id int64) (*persondir.Term, error) {
	var m models.Term
	if err := p.db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "load term %d", id)
	}
	return mapTerm(&m), nil
}

func mapTerm(m *models.Term) *persondir.Term {
	if m == nil {
		return nil
	}
	return &persondir.Term{Year: m.Year, Quarter: m.Quarter}
}

// fixedWidthString projects a numeric store value as a zero-padded string.
// A value that is all zero after padding is absent, not a zero string.
func fixedWidthString(n int64, width int) *string {
	if n <= 0 {
		return nil
	}
	s := fmt.Sprintf("%0*d", width, n)
	return &s
}

func coerceFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
