package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d != (Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Errorf("Unexpected date %+v", d)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", d.String())
	}

	for _, bad := range []string{"", "2023-02-29", "01/02/2024", "2024-1-1x"} {
		_, err := ParseDate(bad)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Expected ErrInvalidFormat for %q, got %v", bad, err)
		}
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		When Date `json:"when"`
	}

	out, err := json.Marshal(wrapper{When: MustParseDate("2024-01-02")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(out) != `{"when":"2024-01-02"}` {
		t.Errorf("Unexpected JSON %s", out)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"when":"2024-03-04"}`), &w); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if w.When != MustParseDate("2024-03-04") {
		t.Errorf("Unexpected date %s", w.When)
	}

	if err := json.Unmarshal([]byte(`{"when":"yesterday"}`), &w); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()
	a := MustParseDate("2024-01-01")
	b := MustParseDate("2024-01-02")

	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Unexpected ordering between dates")
	}

	if !(Date{}).IsZero() || a.IsZero() {
		t.Error("Unexpected IsZero result")
	}
}
