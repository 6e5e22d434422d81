// Package models defines data structures for Richelieu
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Date is a calendar date serialized as "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON parses a date-only string. An empty or null value yields the
// zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON emits the date-only form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// FlexTime handles timestamps that may arrive as an RFC3339/ISO string or as
// epoch seconds or milliseconds. Unparseable values decode to the zero time
// rather than erroring; callers treat zero as "no date".
type FlexTime struct {
	time.Time
}

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts a string timestamp or a numeric epoch.
func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	ft.Time = time.Time{}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num <= 0 {
			return nil
		}
		// Epoch milliseconds when the magnitude is implausible for seconds.
		if num > 1e12 {
			ft.Time = time.UnixMilli(int64(num)).UTC()
		} else {
			ft.Time = time.Unix(int64(num), 0).UTC()
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if s == "" {
		return nil
	}
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		if epoch > 1e12 {
			ft.Time = time.UnixMilli(epoch).UTC()
		} else if epoch > 0 {
			ft.Time = time.Unix(epoch, 0).UTC()
		}
		return nil
	}
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ft.Time = t
			return nil
		}
	}
	return nil
}

// MarshalJSON emits RFC3339, or null for the zero time.
func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if ft.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ft.Format(time.RFC3339))
}
