package fixture

import (
	"context"
	"errors"
	"testing"

	"persondir"
)

func TestGetPersonByNetID(t *testing.T) {
	c := New()
	ctx := context.Background()

	p, err := c.GetPersonByNetID(ctx, "ajuno", nil)
	if err != nil {
		t.Fatalf("lookup ajuno: %v", err)
	}
	if p.RegID != "9136CCB8F66711D5BE060004AC494FFE" {
		t.Fatalf("wrong reg id: %s", p.RegID)
	}
	if p.DisplayName == nil || *p.DisplayName != "Alex Juno" {
		t.Fatalf("display name = %v", p.DisplayName)
	}
	s := p.Student
	if s == nil {
		t.Fatal("expected student role")
	}
	if s.StudentNumber == nil || *s.StudentNumber != "1033334" {
		t.Fatalf("student number = %v", s.StudentNumber)
	}
	if s.Holds == nil || len(*s.Holds) != 2 || (*s.Holds)[0].Seq != 1 {
		t.Fatalf("holds = %+v", s.Holds)
	}
	if s.Degrees == nil || len(*s.Degrees) != 0 {
		t.Fatal("loaded empty collection must be present and empty")
	}
	if s.Advisers == nil || len(*s.Advisers) != 1 {
		t.Fatalf("advisers = %+v", s.Advisers)
	}
	adv := (*s.Advisers)[0]
	if adv.NetID != "gdavis" {
		t.Fatalf("adviser = %s", adv.NetID)
	}
	if adv.Student != nil {
		t.Fatal("nested adviser person must not carry a student role")
	}
	if adv.Employee == nil || adv.Employee.Adviser == nil {
		t.Fatal("nested adviser person must carry the employee adviser sub-role")
	}

	if _, err := c.GetPersonByNetID(ctx, "nobody", nil); !errors.Is(err, persondir.ErrPersonNotFound) {
		t.Fatalf("expected person-not-found, got %v", err)
	}
}

func TestGetPersonByRegID(t *testing.T) {
	c := New()

	p, err := c.GetPersonByRegID(context.Background(), "52DA5A2CB7F040D08F8C5B4B4D9A27E1", nil)
	if err != nil {
		t.Fatalf("lookup by reg id: %v", err)
	}
	if p.NetID != "tleaf" {
		t.Fatalf("expected tleaf, got %s", p.NetID)
	}
	if p.Employee == nil || p.Employee.Adviser != nil {
		t.Fatal("tleaf is an employee without the adviser sub-role")
	}
	if len(p.Employee.EmailAddresses) != 2 {
		t.Fatalf("email addresses = %v", p.Employee.EmailAddresses)
	}
}

func TestGetPersonByStudentNumber(t *testing.T) {
	c := New()
	ctx := context.Background()

	p, err := c.GetPersonByStudentNumber(ctx, "42", nil)
	if err != nil {
		t.Fatalf("lookup unpadded student number: %v", err)
	}
	if p.NetID != "bmarch" {
		t.Fatalf("expected bmarch, got %s", p.NetID)
	}

	for _, bad := range []string{"0", "0000000", "abc", "12345678"} {
		if _, err := c.GetPersonByStudentNumber(ctx, bad, nil); !errors.Is(err, persondir.ErrPersonNotFound) {
			t.Fatalf("student number %q: expected person-not-found, got %v", bad, err)
		}
	}
}

func TestGetPersonBySystemKey(t *testing.T) {
	c := New()

	p, err := c.GetPersonBySystemKey(context.Background(), "524604", nil)
	if err != nil {
		t.Fatalf("lookup system key: %v", err)
	}
	if p.NetID != "bmarch" {
		t.Fatalf("expected bmarch, got %s", p.NetID)
	}
}

func TestIncludeToggles(t *testing.T) {
	c := New()
	ctx := context.Background()

	p, err := c.GetPersonByNetID(ctx, "ajuno", persondir.Include{persondir.IncludeStudent: false})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Student != nil {
		t.Fatal("disabled student role must be pruned")
	}

	p, err = c.GetPersonByNetID(ctx, "ajuno", persondir.Include{
		persondir.IncludeHolds:    false,
		persondir.IncludeAdvisers: false,
	})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Student == nil {
		t.Fatal("student role must stay present")
	}
	if p.Student.Holds != nil || p.Student.Advisers != nil {
		t.Fatal("disabled collections must be pruned")
	}
	if p.Student.Majors == nil {
		t.Fatal("untouched collections must stay present")
	}

	p, err = c.GetPersonByNetID(ctx, "gdavis", persondir.Include{persondir.IncludeEmployee: false})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Employee != nil {
		t.Fatal("disabled employee role must be pruned")
	}
}

func TestListings(t *testing.T) {
	c := New()
	ctx := context.Background()

	students, err := c.GetActiveStudents(ctx, persondir.Query{})
	if err != nil {
		t.Fatalf("active students: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 active students, got %d", len(students))
	}

	registered, err := c.GetRegisteredStudents(ctx, persondir.Query{})
	if err != nil {
		t.Fatalf("registered students: %v", err)
	}
	if len(registered) != 1 || registered[0].NetID != "ajuno" {
		t.Fatalf("expected only ajuno registered, got %d persons", len(registered))
	}

	employees, err := c.GetActiveEmployees(ctx, persondir.Query{})
	if err != nil {
		t.Fatalf("active employees: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 active employees, got %d", len(employees))
	}

	advisers, err := c.GetAdvisers(ctx, "", persondir.Query{})
	if err != nil {
		t.Fatalf("advisers: %v", err)
	}
	if len(advisers) != 1 || advisers[0].NetID != "gdavis" {
		t.Fatalf("expected only gdavis, got %d persons", len(advisers))
	}

	advisers, err = c.GetAdvisers(ctx, "Graduate Advising", persondir.Query{})
	if err != nil {
		t.Fatalf("advisers by unknown program: %v", err)
	}
	if len(advisers) != 0 {
		t.Fatalf("expected no advisers, got %d", len(advisers))
	}
}

func TestPagination(t *testing.T) {
	c := New()
	ctx := context.Background()

	all, err := c.GetPersons(ctx, persondir.Query{})
	if err != nil {
		t.Fatalf("list persons: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 persons, got %d", len(all))
	}

	page1, err := c.GetPersons(ctx, persondir.Query{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	page2, err := c.GetPersons(ctx, persondir.Query{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	page3, err := c.GetPersons(ctx, persondir.Query{Page: 3, PageSize: 3})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(page1) != 3 || len(page2) != 1 || len(page3) != 0 {
		t.Fatalf("page sizes = %d/%d/%d", len(page1), len(page2), len(page3))
	}
	if page1[0].NetID != all[0].NetID || page2[0].NetID != all[3].NetID {
		t.Fatal("pages must follow the unpaginated ordering")
	}
}

func TestCaseload(t *testing.T) {
	c := New()
	ctx := context.Background()

	persons, err := c.GetPersonsByAdviserNetID(ctx, "gdavis", persondir.Query{})
	if err != nil {
		t.Fatalf("caseload by net id: %v", err)
	}
	if len(persons) != 2 || persons[0].NetID != "ajuno" || persons[1].NetID != "bmarch" {
		t.Fatalf("caseload = %d persons", len(persons))
	}

	persons, err = c.GetPersonsByAdviserRegID(ctx, "8A62CE51AB3F4A428E39AD9D0E9D57C2", persondir.Query{})
	if err != nil {
		t.Fatalf("caseload by reg id: %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("expected 2 advisees, got %d", len(persons))
	}

	if _, err := c.GetPersonsByAdviserNetID(ctx, "tleaf", persondir.Query{}); !errors.Is(err, persondir.ErrAdviserNotFound) {
		t.Fatalf("expected adviser-not-found for non-adviser, got %v", err)
	}
	if _, err := c.GetPersonsByAdviserNetID(ctx, "nobody", persondir.Query{}); !errors.Is(err, persondir.ErrAdviserNotFound) {
		t.Fatalf("expected adviser-not-found for unknown id, got %v", err)
	}
}

// The aggregate document and the adviser-list scan describe the same advising
// relationships, so both resolution strategies must agree.
func TestCaseloadStrategiesAgree(t *testing.T) {
	c := New()

	fromAggregate, err := c.caseloadFromAggregate("gdavis")
	if err != nil {
		t.Fatalf("aggregate caseload: %v", err)
	}
	if fromAggregate == nil {
		t.Fatal("built-in root must carry an aggregate document")
	}
	fromScan, err := c.caseloadFromScan("gdavis")
	if err != nil {
		t.Fatalf("scan caseload: %v", err)
	}

	if len(fromAggregate) != len(fromScan) {
		t.Fatalf("strategies disagree: %d vs %d advisees", len(fromAggregate), len(fromScan))
	}
	scanned := make(map[string]bool, len(fromScan))
	for _, p := range fromScan {
		scanned[p.NetID] = true
	}
	for _, p := range fromAggregate {
		if !scanned[p.NetID] {
			t.Fatalf("advisee %s missing from scan result", p.NetID)
		}
	}
}

func TestExtraRootShadowing(t *testing.T) {
	c := New("testdata/extra")
	ctx := context.Background()

	students, err := c.GetActiveStudents(ctx, persondir.Query{})
	if err != nil {
		t.Fatalf("active students: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 active students with the extra root, got %d", len(students))
	}
	for _, p := range students {
		if p.NetID == "ajuno" && p.DisplayName != nil && *p.DisplayName == "Shadowed Document" {
			t.Fatal("earlier root must win for a duplicated identity")
		}
	}

	p, err := c.GetPersonByNetID(ctx, "czane", nil)
	if err != nil {
		t.Fatalf("lookup from extra root: %v", err)
	}
	if p.Student == nil || p.Student.StudentNumber == nil || *p.Student.StudentNumber != "2044556" {
		t.Fatalf("czane student = %+v", p.Student)
	}
}

func TestRegisterRootDeduplicates(t *testing.T) {
	dir := t.TempDir()

	RegisterRoot(dir)
	before := len(searchRoots(nil))
	RegisterRoot(dir)
	after := len(searchRoots(nil))
	if before != after {
		t.Fatalf("re-registering the same root grew the search list: %d vs %d", before, after)
	}
}
