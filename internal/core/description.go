package core

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// RecordField is one field of a parsed DESCRIPTION record.
type RecordField struct {
	Name  string
	Value string
}

// Record is one parsed DESCRIPTION stanza: an ordered mapping from
// field name to accumulated value.
type Record struct {
	fields []RecordField
	index  map[string]int
}

// Get returns the value for a field name.
func (r Record) Get(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Fields returns the record's fields in input order.
func (r Record) Fields() []RecordField {
	return r.fields
}

func (r Record) Len() int {
	return len(r.fields)
}

// DescriptionScanner reads CRAN DESCRIPTION-style metadata as a lazy
// sequence of records, in the manner of bufio.Scanner:
//
//	scanner := NewDescriptionScanner(reader)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    ...
//	}
//	if err := scanner.Err(); err != nil { ... }
//
// The input is consumed in a single forward pass.  Records contain
// unique field names; meeting a field name already present in the
// record in progress completes that record and starts the next one.
// Blank lines are ignored.  Lines without a colon, and lines whose
// candidate field name does not start with a letter (long dependency
// lists wrap onto such lines), are continuations of the most recently
// inserted field.
type DescriptionScanner struct {
	lines   *bufio.Scanner
	fields  []RecordField
	index   map[string]int
	current Record
	done    bool
}

func NewDescriptionScanner(r io.Reader) *DescriptionScanner {
	return &DescriptionScanner{
		lines: bufio.NewScanner(r),
		index: map[string]int{},
	}
}

// Scan advances to the next record.  It returns false once the input
// is exhausted.
func (s *DescriptionScanner) Scan() bool {
	if s.done {
		return false
	}
	for s.lines.Scan() {
		line := s.lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		colon := strings.Index(line, ":")
		if colon < 0 {
			s.appendToLast(line)
			continue
		}

		field := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])
		if field == "" || !unicode.IsLetter([]rune(field)[0]) {
			// Dependency continuation lines like
			// `R (>= 2.15.0), xtable` can still embed a colon;
			// treat the whole line as a continuation fragment.
			s.appendToLast(line)
			continue
		}

		if _, seen := s.index[field]; seen {
			s.current = Record{fields: s.fields, index: s.index}
			s.fields = []RecordField{{Name: field, Value: value}}
			s.index = map[string]int{field: 0}
			if s.current.Len() > 0 {
				return true
			}
			continue
		}

		s.index[field] = len(s.fields)
		s.fields = append(s.fields, RecordField{Name: field, Value: value})
	}

	s.done = true
	if len(s.fields) > 0 {
		s.current = Record{fields: s.fields, index: s.index}
		s.fields = nil
		s.index = nil
		return true
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *DescriptionScanner) Record() Record {
	return s.current
}

// Err returns the first error encountered while reading the input.
func (s *DescriptionScanner) Err() error {
	return s.lines.Err()
}

// appendToLast accumulates a continuation fragment onto the most
// recently inserted field.  Fragments before the first field are
// dropped.
func (s *DescriptionScanner) appendToLast(line string) {
	if len(s.fields) == 0 {
		return
	}
	s.fields[len(s.fields)-1].Value += " " + strings.TrimSpace(line)
}
