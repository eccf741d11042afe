package sitepref

import "strings"

// Preference is a user's explicit choice of site variant.
// The zero value is not a valid preference; functions that may have no
// preference return an additional ok flag instead.
type Preference string

const (
	Normal Preference = "NORMAL"
	Mobile Preference = "MOBILE"
	Tablet Preference = "TABLET"
)

// Parse converts a case-insensitive preference name into a Preference.
// Surrounding whitespace is ignored. Unknown values report ok == false.
func Parse(s string) (Preference, bool) {
	p := Preference(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Valid reports whether p is one of Normal, Mobile or Tablet.
func (p Preference) Valid() bool {
	switch p {
	case Normal, Mobile, Tablet:
		return true
	}
	return false
}

func (p Preference) String() string { return string(p) }

func (p Preference) IsNormal() bool { return p == Normal }
func (p Preference) IsMobile() bool { return p == Mobile }
func (p Preference) IsTablet() bool { return p == Tablet }
