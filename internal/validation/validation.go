// Package validation implements the declarative field validator shared by
// every write endpoint. Each entity declares its create/update rule sets
// as data; Validate evaluates a rule set against the raw request fields
// and reports every failing field at once. No partial writes: callers
// reject the whole operation when the returned map is non-empty.
package validation

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"time"
)

// Kind is the expected type of a field value as decoded from JSON.
type Kind int

const (
	Any Kind = iota
	String
	Integer
	Numeric
	Boolean
	Date
	DateTime
	Array
	Email
)

// ExistsFunc probes the store for a referenced row. It receives the raw
// field value and reports whether the reference resolves.
type ExistsFunc func(ctx context.Context, value interface{}) (bool, error)

// Rule describes the constraints on a single field.
//
// Presence semantics mirror the rule tables this service was specified
// against: Required fields must be present and non-null; Sometimes fields
// are validated only when present (update rule sets relax Required to
// Sometimes); Nullable fields skip remaining checks when null.
type Rule struct {
	Field           string
	Required        bool
	Sometimes       bool
	Nullable        bool
	Type            Kind
	Max             int // max string length, or max entries for Array
	In              []string
	AfterOrEqualNow bool
	Exists          ExistsFunc
	Unique          ExistsFunc // value must not already be stored
	Each            []Rule     // per-entry rules for an Array of objects
}

// Errors maps field names to human-readable failure messages.
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validate evaluates rules against the decoded request fields. The
// returned Errors is non-nil and empty when everything passes. A non-nil
// error indicates an existence probe failed at the store level, not a
// validation outcome.
func Validate(ctx context.Context, fields map[string]interface{}, rules []Rule) (Errors, error) {
	errs := make(Errors)
	for _, r := range rules {
		if err := applyRule(ctx, fields, r, errs); err != nil {
			return nil, err
		}
	}
	return errs, nil
}

func applyRule(ctx context.Context, fields map[string]interface{}, r Rule, errs Errors) error {
	v, present := fields[r.Field]

	if !present {
		if r.Required && !r.Sometimes {
			errs.add(r.Field, fmt.Sprintf("The %s field is required.", r.Field))
		}
		return nil
	}

	if v == nil {
		if r.Nullable {
			return nil
		}
		errs.add(r.Field, fmt.Sprintf("The %s field is required.", r.Field))
		return nil
	}

	if s, ok := v.(string); ok && s == "" && (r.Required || r.Sometimes) && !r.Nullable {
		errs.add(r.Field, fmt.Sprintf("The %s field is required.", r.Field))
		return nil
	}

	if !checkType(v, r.Type) {
		errs.add(r.Field, typeMessage(r.Field, r.Type))
		return nil
	}

	if r.Max > 0 {
		switch r.Type {
		case Array:
			if arr, ok := v.([]interface{}); ok && len(arr) > r.Max {
				errs.add(r.Field, fmt.Sprintf("The %s field must not have more than %d items.", r.Field, r.Max))
			}
		default:
			if s, ok := v.(string); ok && len(s) > r.Max {
				errs.add(r.Field, fmt.Sprintf("The %s field must not be greater than %d characters.", r.Field, r.Max))
			}
		}
	}

	if len(r.In) > 0 && !inList(stringValue(v), r.In) {
		errs.add(r.Field, fmt.Sprintf("The selected %s is invalid.", r.Field))
	}

	if r.AfterOrEqualNow {
		if t, ok := parseDateTime(v); ok && t.Before(time.Now()) {
			errs.add(r.Field, fmt.Sprintf("The %s field must be a date after or equal to now.", r.Field))
		}
	}

	if r.Exists != nil {
		ok, err := r.Exists(ctx, v)
		if err != nil {
			return err
		}
		if !ok {
			errs.add(r.Field, fmt.Sprintf("The selected %s is invalid.", r.Field))
		}
	}

	if r.Unique != nil {
		taken, err := r.Unique(ctx, v)
		if err != nil {
			return err
		}
		if taken {
			errs.add(r.Field, fmt.Sprintf("The %s has already been taken.", r.Field))
		}
	}

	if len(r.Each) > 0 {
		arr, ok := v.([]interface{})
		if !ok {
			return nil
		}
		for i, entry := range arr {
			obj, ok := entry.(map[string]interface{})
			if !ok {
				errs.add(fmt.Sprintf("%s.%d", r.Field, i), fmt.Sprintf("The %s.%d entry must be an object.", r.Field, i))
				continue
			}
			sub := make(Errors)
			for _, er := range r.Each {
				if err := applyRule(ctx, obj, er, sub); err != nil {
					return err
				}
			}
			for f, msgs := range sub {
				errs[fmt.Sprintf("%s.%d.%s", r.Field, i, f)] = msgs
			}
		}
	}

	return nil
}

func checkType(v interface{}, k Kind) bool {
	switch k {
	case Any:
		return true
	case String:
		_, ok := v.(string)
		return ok
	case Integer:
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	case Numeric:
		_, ok := v.(float64)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Date:
		_, ok := parseDate(v)
		return ok
	case DateTime:
		_, ok := parseDateTime(v)
		return ok
	case Array:
		_, ok := v.([]interface{})
		return ok
	case Email:
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := mail.ParseAddress(s)
		return err == nil
	}
	return false
}

func typeMessage(field string, k Kind) string {
	switch k {
	case Integer:
		return fmt.Sprintf("The %s field must be an integer.", field)
	case Numeric:
		return fmt.Sprintf("The %s field must be a number.", field)
	case Boolean:
		return fmt.Sprintf("The %s field must be true or false.", field)
	case Date, DateTime:
		return fmt.Sprintf("The %s field must be a valid date.", field)
	case Array:
		return fmt.Sprintf("The %s field must be an array.", field)
	case Email:
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	default:
		return fmt.Sprintf("The %s field must be a string.", field)
	}
}

func inList(s string, list []string) bool {
	for _, item := range list {
		if s == item {
			return true
		}
	}
	return false
}

func stringValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == math.Trunc(x) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var dateLayouts = []string{"2006-01-02"}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range append(dateLayouts, dateTimeLayouts...) {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDateTime(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate exposes the validator's date parsing so services apply the
// same formats when copying validated fields onto records.
func ParseDate(v interface{}) (time.Time, bool) { return parseDate(v) }

// ParseDateTime is the datetime counterpart of ParseDate.
func ParseDateTime(v interface{}) (time.Time, bool) { return parseDateTime(v) }
