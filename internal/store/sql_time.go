package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the text forms SQLite may hand back for DATETIME
// columns when the driver cannot see the declared column type.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// scanTime adapts a *time.Time for Scan across drivers.
type scanTime struct {
	dst *time.Time
}

func (s scanTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s scanTime) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.dst = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", v)
}
