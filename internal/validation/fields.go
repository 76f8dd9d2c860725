package validation

import "time"

// Field-apply helpers. Services merge validated request fields onto
// records with these; a helper writes only when the key is present and
// the value has the expected shape, which gives updates their
// merge-only-supplied-fields behavior for free.

func SetString(fields map[string]interface{}, key string, dst *string) {
	if v, ok := fields[key].(string); ok {
		*dst = v
	}
}

func SetOptString(fields map[string]interface{}, key string, dst **string) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if s, ok := v.(string); ok {
		*dst = &s
	}
}

func SetBool(fields map[string]interface{}, key string, dst *bool) {
	if v, ok := fields[key].(bool); ok {
		*dst = v
	}
}

func SetOptBool(fields map[string]interface{}, key string, dst **bool) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if b, ok := v.(bool); ok {
		*dst = &b
	}
}

func SetOptInt(fields map[string]interface{}, key string, dst **int) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if f, ok := v.(float64); ok {
		n := int(f)
		*dst = &n
	}
}

func SetInt64(fields map[string]interface{}, key string, dst *int64) {
	if f, ok := fields[key].(float64); ok {
		*dst = int64(f)
	}
}

func SetOptInt64(fields map[string]interface{}, key string, dst **int64) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if f, ok := v.(float64); ok {
		n := int64(f)
		*dst = &n
	}
}

func SetOptFloat(fields map[string]interface{}, key string, dst **float64) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if f, ok := v.(float64); ok {
		*dst = &f
	}
}

func SetDate(fields map[string]interface{}, key string, dst *time.Time) {
	v, present := fields[key]
	if !present {
		return
	}
	if t, ok := parseDate(v); ok {
		*dst = t
	}
}

func SetOptDate(fields map[string]interface{}, key string, dst **time.Time) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if t, ok := parseDate(v); ok {
		*dst = &t
	}
}

func SetOptDateTime(fields map[string]interface{}, key string, dst **time.Time) {
	v, present := fields[key]
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if t, ok := parseDateTime(v); ok {
		*dst = &t
	}
}
