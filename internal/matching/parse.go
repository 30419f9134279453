package matching

import (
	"time"
)

// ParseFilterSpec builds a FilterSpec from loosely-typed request parameters.
// Unrecognized keys and malformed values are ignored: callers get the filters
// that could be understood, never an error. This leniency lives only here;
// the core operates on the typed spec.
func ParseFilterSpec(params map[string]interface{}) *FilterSpec {
	spec := &FilterSpec{}

	for key, value := range params {
		switch key {
		case "type":
			spec.Type, _ = value.(string)
		case "location":
			spec.Location, _ = value.(string)
		case "category":
			spec.Category, _ = value.(string)
		case "tags":
			spec.Tags = toStringSlice(value)
		case "skills":
			spec.Skills = toStringSlice(value)
		case "deadline_after":
			spec.DeadlineAfter = toDate(value)
		case "deadline_before":
			spec.DeadlineBefore = toDate(value)
		case "education_level":
			spec.EducationLevel, _ = value.(string)
		case "posted_within":
			spec.PostedWithin, _ = value.(string)
		case "show_expired":
			spec.ShowExpired = toBool(value)
		}
	}

	return spec
}

func toStringSlice(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

func toDate(value interface{}) *time.Time {
	switch v := value.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return &t
		}
	}
	return nil
}

func toBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	}
	return false
}
