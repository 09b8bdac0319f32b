// Package repository implements the live-store backend of the public
// retrieval contract: query composition over the mirrored schema plus the
// projection of fetched rows into the nested domain graph.
package repository

import (
	"context"
	"errors"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"persondir"
	"persondir/internal/infra/database/models"
)

var tracer = otel.Tracer("persondir/repository")

// PersonRepository answers the retrieval contract against a live store
// handle. It performs reads only and adds no locking: an instance is
// single-owner-at-a-time.
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

var _ persondir.Client = (*PersonRepository)(nil)

func (r *PersonRepository) GetPersonByNetID(ctx context.Context, netID string, inc persondir.Include) (*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonByNetID")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Distinct("person.*").
		Joins("LEFT JOIN prior_net_id ON prior_net_id.person_id = person.id").
		Where("person.net_id = ? OR prior_net_id.net_id = ?", netID, netID)
	return r.oneOrNone(ctx, tx, netID, inc)
}

func (r *PersonRepository) GetPersonByRegID(ctx context.Context, regID string, inc persondir.Include) (*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonByRegID")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Distinct("person.*").
		Joins("LEFT JOIN prior_reg_id ON prior_reg_id.person_id = person.id").
		Where("person.reg_id = ? OR prior_reg_id.reg_id = ?", regID, regID)
	return r.oneOrNone(ctx, tx, regID, inc)
}

// oneOrNone enforces the combined-predicate semantics for ID lookups: a
// person matching on both their current and a historical ID is one distinct
// row, but two different persons matching is a data-integrity condition
// surfaced as AmbiguousIdentityError.
func (r *PersonRepository) oneOrNone(ctx context.Context, tx *gorm.DB, key string, inc persondir.Include) (*persondir.Person, error) {
	var rows []models.Person
	if err := tx.Limit(2).Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query person by identifier")
	}
	switch len(rows) {
	case 0:
		return nil, persondir.PersonNotFoundError{Key: key}
	case 1:
		return newProjector(r.db).person(ctx, &rows[0], inc)
	default:
		return nil, persondir.AmbiguousIdentityError{Key: key, Matches: len(rows)}
	}
}

func (r *PersonRepository) GetPersonByStudentNumber(ctx context.Context, studentNumber string, inc persondir.Include) (*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonByStudentNumber")
	defer span.End()

	padded, ok := persondir.NormalizeStudentNumber(studentNumber)
	if !ok {
		// Guaranteed non-match: do not issue a query.
		return nil, persondir.PersonNotFoundError{Key: studentNumber}
	}
	n, _ := strconv.ParseInt(padded, 10, 64)
	return r.oneJoinedStudent(ctx, "student.student_number = ?", n, studentNumber, inc)
}

func (r *PersonRepository) GetPersonBySystemKey(ctx context.Context, systemKey string, inc persondir.Include) (*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonBySystemKey")
	defer span.End()

	padded, ok := persondir.NormalizeSystemKey(systemKey)
	if !ok {
		return nil, persondir.PersonNotFoundError{Key: systemKey}
	}
	n, _ := strconv.ParseInt(padded, 10, 64)
	return r.oneJoinedStudent(ctx, "student.system_key = ?", n, systemKey, inc)
}

func (r *PersonRepository) oneJoinedStudent(ctx context.Context, cond string, value int64, key string, inc persondir.Include) (*persondir.Person, error) {
	var row models.Person
	err := r.db.WithContext(ctx).Model(&models.Person{}).
		Select("person.*").
		Joins("JOIN student ON student.person_id = person.id").
		Where(cond, value).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, persondir.PersonNotFoundError{Key: key}
		}
		return nil, pkgerrors.Wrap(err, "query person joined to student")
	}
	return newProjector(r.db).person(ctx, &row, inc)
}

func (r *PersonRepository) GetPersons(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersons")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{})
	return r.listPersons(ctx, tx, q)
}

func (r *PersonRepository) GetRegisteredStudents(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetRegisteredStudents")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Select("person.*").
		Joins("JOIN student ON student.person_id = person.id").
		Where("student.enroll_status_code = ?", persondir.RegisteredStatusCode)
	return r.listPersons(ctx, tx, q)
}

func (r *PersonRepository) GetActiveStudents(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetActiveStudents")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Where("person.is_active_student = ?", true)
	return r.listPersons(ctx, tx, q)
}

func (r *PersonRepository) GetActiveEmployees(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetActiveEmployees")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Where("person.is_active_employee = ?", true)
	return r.listPersons(ctx, tx, q)
}

func (r *PersonRepository) GetAdvisers(ctx context.Context, advisingProgram string, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetAdvisers")
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Select("person.*").
		Joins("JOIN employee ON employee.person_id = person.id").
		Joins("JOIN adviser ON adviser.employee_id = employee.id")
	if advisingProgram != "" {
		tx = tx.Where("adviser.advising_program = ?", advisingProgram)
	}
	return r.listPersons(ctx, tx, q)
}

func (r *PersonRepository) GetPersonsByAdviserNetID(ctx context.Context, netID string, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonsByAdviserNetID")
	defer span.End()

	return r.caseload(ctx, "person.net_id = ?", netID, q)
}

func (r *PersonRepository) GetPersonsByAdviserRegID(ctx context.Context, regID string, q persondir.Query) ([]*persondir.Person, error) {
	ctx, span := tracer.Start(ctx, "PersonRepository.GetPersonsByAdviserRegID")
	defer span.End()

	return r.caseload(ctx, "person.reg_id = ?", regID, q)
}

// caseload first resolves the adviser record through the employee and person
// joins, requiring exactly one match, then lists the persons advised by it
// through the student_to_adviser join table. An adviser with an empty
// caseload is a valid empty result.
func (r *PersonRepository) caseload(ctx context.Context, cond, id string, q persondir.Query) ([]*persondir.Person, error) {
	var advisers []models.Adviser
	err := r.db.WithContext(ctx).Model(&models.Adviser{}).
		Distinct("adviser.*").
		Joins("JOIN employee ON employee.id = adviser.employee_id").
		Joins("JOIN person ON person.id = employee.person_id").
		Where(cond, id).
		Limit(2).
		Find(&advisers).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "resolve adviser")
	}
	if len(advisers) != 1 {
		return nil, persondir.AdviserNotFoundError{Identifier: id}
	}

	tx := r.db.WithContext(ctx).Model(&models.Person{}).
		Select("person.*").
		Joins("JOIN student ON student.person_id = person.id").
		Joins("JOIN student_to_adviser ON student_to_adviser.student_id = student.id").
		Where("student_to_adviser.adviser_id = ?", advisers[0].ID)
	return r.listPersons(ctx, tx, q)
}

// listPersons applies the optional offset/limit slice and projects every row.
// Listings are ordered by person id so that pagination is stable.
func (r *PersonRepository) listPersons(ctx context.Context, tx *gorm.DB, q persondir.Query) ([]*persondir.Person, error) {
	tx = tx.Order("person.id")
	if q.Paginated() {
		tx = tx.Limit(q.PageSize).Offset((q.Page - 1) * q.PageSize)
	}

	var rows []models.Person
	if err := tx.Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list persons")
	}

	proj := newProjector(r.db)
	out := make([]*persondir.Person, 0, len(rows))
	for i := range rows {
		p, err := proj.person(ctx, &rows[i], q.Include)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
