package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date backed by a Postgres DATE column. The pq driver
// hands DATE values back as time.Time; Scan normalizes every source form to
// "2006-01-02" so stored dates compare and parse the same as request dates.
type Date string

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(dateLayout))
	case []byte:
		*d = normalizeDate(string(v))
	case string:
		*d = normalizeDate(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d Date) String() string {
	return string(d)
}

// normalizeDate keeps only the date portion of a driver string that may
// carry a time suffix ("2025-12-08T00:00:00Z" -> "2025-12-08").
func normalizeDate(s string) Date {
	if len(s) >= len(dateLayout) {
		if _, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return Date(s[:len(dateLayout)])
		}
	}
	return Date(s)
}
