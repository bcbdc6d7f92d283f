package interpret

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/JonMunkholm/rosterscan/internal/diag"
	"github.com/JonMunkholm/rosterscan/internal/sheet"
)

// Role names what a column means to the roster.
type Role string

const (
	RoleIdentifier Role = "identifier"
	RoleGivenName  Role = "given_name"
	RoleFamilyName Role = "family_name"
	RoleEmail      Role = "email"
)

// requiredRoles are the roles a sheet must bind before persons can be
// assembled; email stays optional.
var requiredRoles = []Role{RoleIdentifier, RoleGivenName, RoleFamilyName}

// roleOrder is the fixed presentation order for bindings.
var roleOrder = []Role{RoleIdentifier, RoleGivenName, RoleFamilyName, RoleEmail}

// Required reports whether a person list is incomplete without the
// role.
func (r Role) Required() bool { return r != RoleEmail }

func (r Role) describe() string {
	switch r {
	case RoleIdentifier:
		return "personal identifiers"
	case RoleGivenName:
		return "given names"
	case RoleFamilyName:
		return "family names"
	case RoleEmail:
		return "email addresses"
	}
	return string(r)
}

// minValidPercent is the content-validation bar: below this share of
// valid rows a header match is not believed.
const minValidPercent = 80

// Classified is a successful reading of one column as one role.
type Classified struct {
	Role   Role
	Column *sheet.Column

	// Found holds the per-row extracted value: for name columns the
	// trimmed text of every row, for identifier and email columns the
	// regex match of each row that produced one.
	Found map[int]string

	// Valid holds the row positions that passed the role's per-row
	// predicate.
	Valid map[int]struct{}
}

// ----------------------------------------------------------------------------
// Header patterns and value extraction
// ----------------------------------------------------------------------------

// Header patterns are matched as prefixes against the lower-cased,
// trimmed header, so "E-postadress" and "Last name (family)" land
// where expected. Swedish forms sit beside the English ones.
var (
	familyNameHeader = regexp.MustCompile(`^((last|family).*name|efternamn)`)
	givenNameHeader  = regexp.MustCompile(`^((first|given).*name|förnamn)`)
	identifierHeader = regexp.MustCompile(`^((person|t).*(number|nmr|nr|nummer)|birth(day|date)|födelse(dag|datum))`)
	emailHeader      = regexp.MustCompile(`^(e*-*mail|e*-*post)`)
)

// identifierValue matches Swedish personal identity numbers and their
// interim variants: 2- or 4-digit year, month, day, then optionally a
// separator (hyphen, space, or nothing) and a four-character suffix
// whose first character may be the placeholder "T" and second "F".
// A bare birth date also matches.
var identifierValue = regexp.MustCompile(`((19|20)\d\d|\d\d)[01]\d[0-3]\d(( |-|)[T\d][F\d]\d\d)?`)

// emailValue is deliberately loose: anything address-shaped in the
// cell counts, with Unicode letters and digits allowed on both sides.
var emailValue = regexp.MustCompile(`[\p{L}\p{N}_.]+@[\p{L}\p{N}_][\p{L}\p{N}_.]*[\p{L}\p{N}_][\p{L}\p{N}_]`)

// isNameLike accepts trimmed cell text as a personal name: longer
// than one character and nothing but letters and spaces.
func isNameLike(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// ----------------------------------------------------------------------------
// Classifiers
// ----------------------------------------------------------------------------

// classifier reads one column as one role: a header pattern gate,
// then per-row content validation.
type classifier struct {
	role    Role
	pattern *regexp.Regexp
	content func(col *sheet.Column) (found map[int]string, valid map[int]struct{}, total int)
}

// classifiers in arbitration order.
var classifiers = []classifier{
	{role: RoleFamilyName, pattern: familyNameHeader, content: nameContent},
	{role: RoleGivenName, pattern: givenNameHeader, content: nameContent},
	{role: RoleIdentifier, pattern: identifierHeader, content: extractContent(identifierValue)},
	{role: RoleEmail, pattern: emailHeader, content: extractContent(emailValue)},
}

func (c classifier) classify(col *sheet.Column) diag.Result[*Classified] {
	header := strings.ToLower(strings.TrimSpace(col.Header))
	if !c.pattern.MatchString(header) {
		// Identical text across classifiers on purpose: arbitration
		// dedups the four copies into one.
		return diag.Failure[*Classified](diag.New("unrecognized column name: %q", col.Header))
	}

	found, valid, total := c.content(col)
	if total == 0 {
		return diag.Failure[*Classified](diag.New("column %q has no data rows", col.Header))
	}
	if 100*len(valid) < minValidPercent*total {
		return diag.Failure[*Classified](diag.New(
			"column %q: only %d of %d rows contain %s",
			col.Header, len(valid), total, c.role.describe()))
	}

	return diag.Success(&Classified{Role: c.role, Column: col, Found: found, Valid: valid})
}

// nameContent validates every row as a personal name. Found data is
// the trimmed text of every row, valid or not, and the ratio is taken
// over all rows in the column.
func nameContent(col *sheet.Column) (map[int]string, map[int]struct{}, int) {
	rows := col.Rows()
	found := make(map[int]string, len(rows))
	valid := make(map[int]struct{})

	for _, pos := range rows {
		s := ""
		if cell, ok := col.Cell(pos); ok {
			s = strings.TrimSpace(cell.String())
		}
		found[pos] = s
		if isNameLike(s) {
			valid[pos] = struct{}{}
		}
	}
	return found, valid, len(rows)
}

// extractContent validates rows by regex extraction. Found data holds
// one entry per row that matched, and the ratio is taken over the
// length of the extraction sequence, which is this column's own
// processed-row count rather than a shared denominator.
func extractContent(re *regexp.Regexp) func(*sheet.Column) (map[int]string, map[int]struct{}, int) {
	return func(col *sheet.Column) (map[int]string, map[int]struct{}, int) {
		found := make(map[int]string)
		valid := make(map[int]struct{})
		extracted := 0

		for _, pos := range col.Rows() {
			extracted++
			cell, ok := col.Cell(pos)
			if !ok {
				continue
			}
			m := re.FindString(cell.String())
			if m == "" {
				continue
			}
			found[pos] = m
			valid[pos] = struct{}{}
		}
		return found, valid, extracted
	}
}

// ----------------------------------------------------------------------------
// Arbitration
// ----------------------------------------------------------------------------

// ClassifyColumn runs every classifier over the column and requires
// exactly one success.
func ClassifyColumn(col *sheet.Column) diag.Result[*Classified] {
	return arbitrate(col, classifiers)
}

func arbitrate(col *sheet.Column, candidates []classifier) diag.Result[*Classified] {
	var wins []*Classified
	var fails []*diag.Diagnostic

	for _, c := range candidates {
		if res := c.classify(col); res.Ok() {
			wins = append(wins, res.Value)
		} else {
			fails = append(fails, res.Diag)
		}
	}

	switch len(wins) {
	case 1:
		return diag.Success(wins[0])
	case 0:
		return diag.Failure[*Classified](diag.Composite(
			fmt.Sprintf("no valid interpretation of column %q", col.Header), fails...))
	default:
		// Deliberately flat: which readings succeeded is dropped.
		return diag.Failure[*Classified](diag.New(
			"too many valid interpretations of column %q", col.Header))
	}
}
