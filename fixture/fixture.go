// Package fixture provides the fixture-replay backend of the persondir
// contract: the same public operations answered from a directory tree of
// serialized person documents instead of a live store.
//
// A fixture tree groups documents by role (students/, employees/,
// employees/advisers/) with the search keys embedded in the file names, plus
// one aggregate _caseloads.json mapping an adviser identifier fragment to an
// ordered list of student document references.
package fixture

import (
	"context"
	"encoding/json"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	pkgerrors "github.com/pkg/errors"

	"persondir"
)

const caseloadFile = "_caseloads.json"

// Client answers the persondir contract from fixture documents. The net
// observable shape of a result is indistinguishable from the live backend
// given equivalent underlying data.
type Client struct {
	roots []searchRoot
}

var _ persondir.Client = (*Client)(nil)

// New builds a fixture client searching the built-in default root, every
// process-registered root, and then the given extra roots, in that order.
func New(extraRoots ...string) *Client {
	return &Client{roots: searchRoots(extraRoots)}
}

func (c *Client) GetPersonByNetID(ctx context.Context, netID string, inc persondir.Include) (*persondir.Person, error) {
	return c.findOne(netID, netID, inc)
}

func (c *Client) GetPersonByRegID(ctx context.Context, regID string, inc persondir.Include) (*persondir.Person, error) {
	return c.findOne(regID, regID, inc)
}

func (c *Client) GetPersonByStudentNumber(ctx context.Context, studentNumber string, inc persondir.Include) (*persondir.Person, error) {
	padded, ok := persondir.NormalizeStudentNumber(studentNumber)
	if !ok {
		return nil, persondir.PersonNotFoundError{Key: studentNumber}
	}
	return c.findOne(padded, studentNumber, inc)
}

func (c *Client) GetPersonBySystemKey(ctx context.Context, systemKey string, inc persondir.Include) (*persondir.Person, error) {
	padded, ok := persondir.NormalizeSystemKey(systemKey)
	if !ok {
		return nil, persondir.PersonNotFoundError{Key: systemKey}
	}
	return c.findOne(padded, systemKey, inc)
}

func (c *Client) GetPersons(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	return c.list("**/[!_]*.json", q)
}

func (c *Client) GetRegisteredStudents(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	persons, err := c.readAll("**/students/**/[!_]*.json")
	if err != nil {
		return nil, err
	}
	registered := persons[:0]
	for _, p := range persons {
		if p.Student != nil && p.Student.EnrollStatusCode != nil &&
			*p.Student.EnrollStatusCode == persondir.RegisteredStatusCode {
			registered = append(registered, p)
		}
	}
	return finishList(registered, q), nil
}

func (c *Client) GetActiveStudents(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	return c.list("**/students/**/[!_]*.json", q)
}

func (c *Client) GetActiveEmployees(ctx context.Context, q persondir.Query) ([]*persondir.Person, error) {
	return c.list("**/employees/**/[!_]*.json", q)
}

func (c *Client) GetAdvisers(ctx context.Context, advisingProgram string, q persondir.Query) ([]*persondir.Person, error) {
	persons, err := c.readAll("**/advisers/**/[!_]*.json")
	if err != nil {
		return nil, err
	}
	if advisingProgram != "" {
		filtered := persons[:0]
		for _, p := range persons {
			if p.Employee != nil && p.Employee.Adviser != nil &&
				p.Employee.Adviser.AdvisingProgram != nil &&
				*p.Employee.Adviser.AdvisingProgram == advisingProgram {
				filtered = append(filtered, p)
			}
		}
		persons = filtered
	}
	return finishList(persons, q), nil
}

func (c *Client) GetPersonsByAdviserNetID(ctx context.Context, netID string, q persondir.Query) ([]*persondir.Person, error) {
	return c.caseload(netID, q)
}

func (c *Client) GetPersonsByAdviserRegID(ctx context.Context, regID string, q persondir.Query) ([]*persondir.Person, error) {
	return c.caseload(regID, q)
}

// caseload prefers the precomputed aggregate document and falls back to
// scanning active students' adviser lists when no aggregate exists. For
// consistent fixture data both strategies yield the same result set.
func (c *Client) caseload(id string, q persondir.Query) ([]*persondir.Person, error) {
	advisers, err := c.glob("**/advisers/*" + id + "*.json")
	if err != nil {
		return nil, err
	}
	if len(advisers) == 0 {
		return nil, persondir.AdviserNotFoundError{Identifier: id}
	}

	persons, err := c.caseloadFromAggregate(id)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons, err = c.caseloadFromScan(id)
		if err != nil {
			return nil, err
		}
	}
	return finishList(persons, q), nil
}

// caseloadFromAggregate resolves advisees through _caseloads.json. It
// returns (nil, nil) when no root carries an aggregate document.
func (c *Client) caseloadFromAggregate(id string) ([]*persondir.Person, error) {
	matches, err := c.glob("**/" + caseloadFile)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	raw, err := fs.ReadFile(matches[0].root.fsys, matches[0].path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read caseload document")
	}
	var caseloads map[string][]string
	if err := json.Unmarshal(raw, &caseloads); err != nil {
		return nil, pkgerrors.Wrap(err, "decode caseload document")
	}

	keys := make([]string, 0, len(caseloads))
	for k := range caseloads {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	persons := []*persondir.Person{}
	for _, adviserKey := range keys {
		if !strings.Contains(adviserKey, id) {
			continue
		}
		for _, ref := range caseloads[adviserKey] {
			p, err := c.readFirst("**/students/" + ref)
			if err != nil {
				return nil, err
			}
			persons = append(persons, p)
		}
	}
	return persons, nil
}

// caseloadFromScan resolves advisees by membership test over every active
// student's adviser list.
func (c *Client) caseloadFromScan(id string) ([]*persondir.Person, error) {
	students, err := c.readAll("**/students/**/[!_]*.json")
	if err != nil {
		return nil, err
	}
	advised := []*persondir.Person{}
	for _, p := range students {
		if p.Student == nil || p.Student.Advisers == nil {
			continue
		}
		for _, adviser := range *p.Student.Advisers {
			if adviser.NetID == id || adviser.RegID == id {
				advised = append(advised, p)
				break
			}
		}
	}
	return advised, nil
}

type match struct {
	root searchRoot
	path string
}

// glob matches a pattern across all roots, keeping registration order between
// roots and lexical order within a root.
func (c *Client) glob(pattern string) ([]match, error) {
	var out []match
	for _, r := range c.roots {
		paths, err := doublestar.Glob(r.fsys, pattern)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "glob %q in root %s", pattern, r.name)
		}
		sort.Strings(paths)
		for _, p := range paths {
			out = append(out, match{root: r, path: p})
		}
	}
	return out, nil
}

func readPerson(m match) (*persondir.Person, error) {
	raw, err := fs.ReadFile(m.root.fsys, m.path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read fixture %s", m.path)
	}
	var p persondir.Person
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode fixture %s", m.path)
	}
	return &p, nil
}

func (c *Client) readFirst(pattern string) (*persondir.Person, error) {
	matches, err := c.glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, persondir.PersonNotFoundError{Key: pattern}
	}
	return readPerson(matches[0])
}

func (c *Client) findOne(key, lookupKey string, inc persondir.Include) (*persondir.Person, error) {
	matches, err := c.glob("**/*" + key + "*.json")
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if strings.HasPrefix(baseName(m.path), "_") {
			continue
		}
		p, err := readPerson(m)
		if err != nil {
			return nil, err
		}
		applyInclude(p, inc)
		return p, nil
	}
	return nil, persondir.PersonNotFoundError{Key: lookupKey}
}

// readAll materializes every match of pattern, de-duplicated by primary
// network ID: once a root has matched an identity, later roots' documents
// for the same identity are ignored.
func (c *Client) readAll(pattern string) ([]*persondir.Person, error) {
	matches, err := c.glob(pattern)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(matches))
	out := []*persondir.Person{}
	for _, m := range matches {
		p, err := readPerson(m)
		if err != nil {
			return nil, err
		}
		if seen[p.NetID] {
			continue
		}
		seen[p.NetID] = true
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) list(pattern string, q persondir.Query) ([]*persondir.Person, error) {
	persons, err := c.readAll(pattern)
	if err != nil {
		return nil, err
	}
	return finishList(persons, q), nil
}

// finishList applies the inclusion toggles and then the optional 1-indexed
// offset/limit slice over the materialized list.
func finishList(persons []*persondir.Person, q persondir.Query) []*persondir.Person {
	for _, p := range persons {
		applyInclude(p, q.Include)
	}
	if !q.Paginated() {
		return persons
	}
	start := (q.Page - 1) * q.PageSize
	if start >= len(persons) {
		return []*persondir.Person{}
	}
	end := start + q.PageSize
	if end > len(persons) {
		end = len(persons)
	}
	return persons[start:end]
}

// applyInclude prunes disabled optional attributes after deserialization so
// the resulting shape matches what the live backend would have built. The
// nested adviser persons are pruned with their student role forced off,
// mirroring the live projection's traversal guard.
func applyInclude(p *persondir.Person, inc persondir.Include) {
	if !inc.Enabled(persondir.IncludeEmployee) {
		p.Employee = nil
	}
	if !inc.Enabled(persondir.IncludeStudent) {
		p.Student = nil
	}
	s := p.Student
	if s == nil {
		return
	}
	if !inc.Enabled(persondir.IncludeMajors) {
		s.Majors = nil
	}
	if !inc.Enabled(persondir.IncludeIntendedMajors) {
		s.IntendedMajors = nil
	}
	if !inc.Enabled(persondir.IncludePendingMajors) {
		s.PendingMajors = nil
	}
	if !inc.Enabled(persondir.IncludeRequestedMajors) {
		s.RequestedMajors = nil
	}
	if !inc.Enabled(persondir.IncludeEthnicities) {
		s.Ethnicities = nil
	}
	if !inc.Enabled(persondir.IncludeSports) {
		s.Sports = nil
	}
	if !inc.Enabled(persondir.IncludeTranscripts) {
		s.Transcripts = nil
	}
	if !inc.Enabled(persondir.IncludeTransfers) {
		s.Transfers = nil
	}
	if !inc.Enabled(persondir.IncludeHolds) {
		s.Holds = nil
	}
	if !inc.Enabled(persondir.IncludeDegrees) {
		s.Degrees = nil
	}
	if !inc.Enabled(persondir.IncludeAdvisers) {
		s.Advisers = nil
	} else if s.Advisers != nil {
		nested := inc.With(persondir.IncludeStudent, false)
		advisers := *s.Advisers
		for i := range advisers {
			applyInclude(&advisers[i], nested)
		}
	}
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
