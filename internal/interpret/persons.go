package interpret

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JonMunkholm/rosterscan/internal/diag"
)

// Person is one valid roster row.
type Person struct {
	// Row is the row position in the analyzed table. It never gets
	// renumbered, so it stays usable as a write-back key even though
	// invalid rows leave gaps between persons.
	Row        int    `json:"row"`
	Identifier string `json:"identifier"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email,omitempty"`
}

// Binding records which column ended up carrying a role.
type Binding struct {
	Role   Role   `json:"role"`
	Header string `json:"header"`
}

// PersonList is the assembled reading of a whole table.
type PersonList struct {
	Persons []Person

	byRole map[Role]*Classified
}

// Bindings lists the role-to-column assignments in fixed role order.
func (pl *PersonList) Bindings() []Binding {
	out := make([]Binding, 0, len(pl.byRole))
	for _, role := range roleOrder {
		if cl, ok := pl.byRole[role]; ok {
			out = append(out, Binding{Role: role, Header: cl.Column.Header})
		}
	}
	return out
}

// AssemblePersons folds per-column outcomes into a person list.
//
// Required roles must each be bound by exactly one successful column.
// When one is missing, the failure aggregates every failed column in
// the sheet, whatever each column's own failure reason was.
func AssemblePersons(columns []ColumnAnalysis) diag.Result[*PersonList] {
	byRole := make(map[Role]*Classified)
	counts := make(map[Role]int)
	var failed []*diag.Diagnostic

	for _, ca := range columns {
		if !ca.Outcome.Ok() {
			failed = append(failed, ca.Outcome.Diag)
			continue
		}
		cl := ca.Outcome.Value
		// Later columns win the slot; only required roles are checked
		// for duplicates below.
		byRole[cl.Role] = cl
		counts[cl.Role]++
	}

	for _, role := range requiredRoles {
		if counts[role] > 1 {
			return diag.Failure[*PersonList](diag.New("duplicate columns for role %q", role))
		}
	}
	for _, role := range requiredRoles {
		if counts[role] == 0 {
			return diag.Failure[*PersonList](diag.Composite(
				fmt.Sprintf("missing required role %q", role), failed...))
		}
	}

	// All role-bound columns must span the same number of rows.
	extent := -1
	for _, role := range roleOrder {
		cl, ok := byRole[role]
		if !ok {
			continue
		}
		if extent == -1 {
			extent = cl.Column.Len()
			continue
		}
		if cl.Column.Len() != extent {
			return diag.Failure[*PersonList](diag.New("mismatched columns"))
		}
	}

	// A row is usable when every required role validated it. The
	// optional email column never narrows the set.
	rows := validRowIntersection(byRole)

	persons := make([]Person, 0, len(rows))
	for _, row := range rows {
		p := Person{
			Row:        row,
			Identifier: NormalizeIdentifier(byRole[RoleIdentifier].Found[row]),
			GivenName:  byRole[RoleGivenName].Found[row],
			FamilyName: byRole[RoleFamilyName].Found[row],
		}
		if email, ok := byRole[RoleEmail]; ok {
			p.Email = email.Found[row]
		}
		persons = append(persons, p)
	}

	return diag.Success(&PersonList{Persons: persons, byRole: byRole})
}

func validRowIntersection(byRole map[Role]*Classified) []int {
	var rows []int
	for row := range byRole[requiredRoles[0]].Valid {
		ok := true
		for _, role := range requiredRoles[1:] {
			if _, in := byRole[role].Valid[row]; !in {
				ok = false
				break
			}
		}
		if ok {
			rows = append(rows, row)
		}
	}
	sort.Ints(rows)
	return rows
}

// NormalizeIdentifier canonicalizes an extracted identifier: strip
// hyphens and spaces, drop the century from 12-digit forms, and cut
// interim "TF" placeholders back to the birth date. Applying it twice
// changes nothing.
func NormalizeIdentifier(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	if len(s) == 12 {
		s = s[2:]
	}
	if len(s) == 10 && s[6:8] == "TF" {
		s = s[:6]
	}
	return s
}
