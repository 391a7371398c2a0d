package record

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Tolerant field accessors: stored documents come back from JSON as
// interface{} values and older records may miss fields entirely.
// Missing or mistyped fields decode to zero values; repositories
// normalize defaults rather than erroring on imperfect data.

func fieldString(rec Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

func fieldNullString(rec Record, key string) null.String {
	if s, ok := rec[key].(string); ok && s != "" {
		return null.StringFrom(s)
	}
	return null.String{}
}

func fieldFloat(rec Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// dateLayouts accepted for stored dates; full timestamps and bare
// calendar days both occur.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func fieldTime(rec Record, key string) time.Time {
	s, ok := rec[key].(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fieldStrings(rec Record, key string) []string {
	out := make([]string, 0)
	items, ok := rec[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func fieldWeekdays(rec Record, key string) []time.Weekday {
	out := make([]time.Weekday, 0)
	items, ok := rec[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if f, ok := item.(float64); ok && f >= 0 && f <= 6 {
			out = append(out, time.Weekday(int(f)))
		}
	}
	return out
}

func fieldRecord(rec Record, key string) Record {
	if m, ok := rec[key].(map[string]interface{}); ok {
		return m
	}
	return Record{}
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// encodeDay stores calendar days without a time component.
func encodeDay(t time.Time) string {
	return t.Format("2006-01-02")
}

func encodeStrings(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func encodeWeekdays(days []time.Weekday) []interface{} {
	out := make([]interface{}, len(days))
	for i, d := range days {
		out[i] = float64(d)
	}
	return out
}
