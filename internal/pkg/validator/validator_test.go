package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2024-06-03", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)},
		{"06/03/2024", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)},
		{" 2024-06-03 ", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)},
		{"12/31/2024", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.input)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", c.input, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	invalid := []string{"2024-13-01", "2024-01-32", "2024/06/03", "03-06-2024", "31/12/2024", ""}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "06/03/2024"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		input string
		want  time.Month
	}{
		{"JUNE", time.June},
		{"june", time.June},
		{"December", time.December},
		{" January ", time.January},
	}
	for _, c := range cases {
		got, ok := ParseMonth(c.input)
		if !ok {
			t.Errorf("ParseMonth(%q) ok = false, want true", c.input)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	invalid := []string{"JUN", "MARCHES", "13", ""}
	for _, s := range invalid {
		if _, ok := ParseMonth(s); ok {
			t.Errorf("ParseMonth(%q) ok = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
