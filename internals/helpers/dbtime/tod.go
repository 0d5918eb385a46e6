// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tod is a wall-clock time of day ("HH:MM:SS") without date or zone.
type Tod struct{ time.Time }

// From keeps HH:mm:ss of t, dropping date and zone.
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// Parse builds a Tod from "HH:mm[:ss]".
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// MustParse is Parse for compile-time constants.
func MustParse(s string) Tod {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tod) String() string {
	return t.Format("15:04:05")
}

// Scan accepts time.Time or "HH:MM[:SS]".
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("tod: %w", err)
	}
	t.Time = tt
	return nil
}

// Value sends "HH:MM:SS" so postgres TIME accepts it.
func (t Tod) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("tod: %w", err)
	}
	return t.parse(s)
}
