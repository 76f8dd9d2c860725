package validation

import (
	"context"
	"testing"
	"time"
)

func validate(t *testing.T, fields map[string]interface{}, rules []Rule) Errors {
	t.Helper()
	errs, err := Validate(context.Background(), fields, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return errs
}

func TestRequired(t *testing.T) {
	rules := []Rule{{Field: "name", Required: true, Type: String}}

	errs := validate(t, map[string]interface{}{}, rules)
	if errs["name"][0] != "The name field is required." {
		t.Errorf("unexpected message %v", errs["name"])
	}

	errs = validate(t, map[string]interface{}{"name": nil}, rules)
	if len(errs["name"]) == 0 {
		t.Error("expected error for explicit null")
	}

	errs = validate(t, map[string]interface{}{"name": ""}, rules)
	if len(errs["name"]) == 0 {
		t.Error("expected error for empty string")
	}

	errs = validate(t, map[string]interface{}{"name": "ok"}, rules)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestSometimes(t *testing.T) {
	rules := []Rule{{Field: "name", Required: true, Sometimes: true, Type: String}}

	errs := validate(t, map[string]interface{}{}, rules)
	if len(errs) != 0 {
		t.Errorf("absent sometimes field must pass, got %v", errs)
	}

	errs = validate(t, map[string]interface{}{"name": ""}, rules)
	if len(errs["name"]) == 0 {
		t.Error("present but empty sometimes field must fail")
	}
}

func TestNullable(t *testing.T) {
	rules := []Rule{{Field: "notes", Nullable: true, Type: String}}

	errs := validate(t, map[string]interface{}{"notes": nil}, rules)
	if len(errs) != 0 {
		t.Errorf("null nullable field must pass, got %v", errs)
	}

	errs = validate(t, map[string]interface{}{"notes": float64(5)}, rules)
	if len(errs["notes"]) == 0 {
		t.Error("expected type error")
	}
}

func TestTypeChecks(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		good interface{}
		bad  interface{}
	}{
		{"string", String, "x", float64(1)},
		{"integer", Integer, float64(3), float64(3.5)},
		{"numeric", Numeric, float64(3.5), "3.5"},
		{"boolean", Boolean, true, "true"},
		{"date", Date, "2025-05-12", "12/05/2025"},
		{"datetime", DateTime, "2025-05-12T10:00:00Z", "noon"},
		{"array", Array, []interface{}{}, "[]"},
		{"email", Email, "a@b.com", "not-an-email"},
	}

	for _, tc := range cases {
		rules := []Rule{{Field: "f", Required: true, Type: tc.kind}}
		if errs := validate(t, map[string]interface{}{"f": tc.good}, rules); len(errs) != 0 {
			t.Errorf("%s: valid value rejected: %v", tc.name, errs)
		}
		if errs := validate(t, map[string]interface{}{"f": tc.bad}, rules); len(errs["f"]) == 0 {
			t.Errorf("%s: invalid value accepted", tc.name)
		}
	}
}

func TestMax(t *testing.T) {
	rules := []Rule{{Field: "name", Required: true, Type: String, Max: 3}}
	errs := validate(t, map[string]interface{}{"name": "abcd"}, rules)
	if len(errs["name"]) == 0 {
		t.Error("expected length error")
	}

	rules = []Rule{{Field: "items", Required: true, Type: Array, Max: 1}}
	errs = validate(t, map[string]interface{}{"items": []interface{}{1, 2}}, rules)
	if errs["items"][0] != "The items field must not have more than 1 items." {
		t.Errorf("unexpected message %v", errs["items"])
	}
}

func TestIn(t *testing.T) {
	rules := []Rule{{Field: "sex", Required: true, In: []string{"male", "female"}}}

	errs := validate(t, map[string]interface{}{"sex": "other"}, rules)
	if errs["sex"][0] != "The selected sex is invalid." {
		t.Errorf("unexpected message %v", errs["sex"])
	}

	errs = validate(t, map[string]interface{}{"sex": "female"}, rules)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestAfterOrEqualNow(t *testing.T) {
	rules := []Rule{{Field: "at", Required: true, Type: DateTime, AfterOrEqualNow: true}}

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	errs := validate(t, map[string]interface{}{"at": past}, rules)
	if len(errs["at"]) == 0 {
		t.Error("expected past datetime rejected")
	}

	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	errs = validate(t, map[string]interface{}{"at": future}, rules)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestExists(t *testing.T) {
	probe := func(_ context.Context, v interface{}) (bool, error) {
		return v == float64(1), nil
	}
	rules := []Rule{{Field: "ref", Required: true, Exists: probe}}

	errs := validate(t, map[string]interface{}{"ref": float64(2)}, rules)
	if errs["ref"][0] != "The selected ref is invalid." {
		t.Errorf("unexpected message %v", errs["ref"])
	}

	errs = validate(t, map[string]interface{}{"ref": float64(1)}, rules)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestUnique(t *testing.T) {
	probe := func(_ context.Context, v interface{}) (bool, error) {
		return v == "taken", nil
	}
	rules := []Rule{{Field: "email", Required: true, Type: String, Unique: probe}}

	errs := validate(t, map[string]interface{}{"email": "taken"}, rules)
	if errs["email"][0] != "The email has already been taken." {
		t.Errorf("unexpected message %v", errs["email"])
	}

	errs = validate(t, map[string]interface{}{"email": "fresh"}, rules)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestEach(t *testing.T) {
	rules := []Rule{{
		Field: "entries", Required: true, Type: Array,
		Each: []Rule{
			{Field: "label", Required: true, Type: String, In: []string{"a", "b"}},
		},
	}}

	errs := validate(t, map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"label": "a"},
			map[string]interface{}{"label": "z"},
			map[string]interface{}{},
		},
	}, rules)

	if len(errs["entries.0.label"]) != 0 {
		t.Errorf("valid entry flagged: %v", errs)
	}
	if len(errs["entries.1.label"]) == 0 {
		t.Error("expected in-list error on entry 1")
	}
	if errs["entries.2.label"][0] != "The label field is required." {
		t.Errorf("unexpected message %v", errs["entries.2.label"])
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	rules := []Rule{
		{Field: "a", Required: true, Type: String},
		{Field: "b", Required: true, Type: String},
	}
	errs := validate(t, map[string]interface{}{}, rules)
	if len(errs) != 2 {
		t.Errorf("expected both fields reported, got %v", errs)
	}
}
