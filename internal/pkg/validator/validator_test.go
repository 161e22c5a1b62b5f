package validator

import (
	"testing"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Errorf("IsValidDate(2024-02-29) = false, want true")
	}
	invalid := []string{"2023-02-29", "2024-13-01", "15-02-2024", "2024/02/15", ""}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "2024", "2024-1-1", ""}
	for _, key := range valid {
		if !IsValidMonthKey(key) {
			t.Errorf("IsValidMonthKey(%q) = false, want true", key)
		}
	}
	for _, key := range invalid {
		if IsValidMonthKey(key) {
			t.Errorf("IsValidMonthKey(%q) = true, want false", key)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", "not-a-time", ""}
	for _, ts := range valid {
		if _, ok := IsValidDateTime(ts); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if _, ok := IsValidDateTime(ts); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", ts)
		}
	}
}
