package validate_test

import (
	"testing"

	"ferromart/internal/validate"
)

func TestEmail(t *testing.T) {
	if _, ok := validate.Email("ana@example.com"); !ok {
		t.Fatal("valid email rejected")
	}
	for _, bad := range []string{"", "not-an-email", "a@b", "  "} {
		if _, ok := validate.Email(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestQtyClamps(t *testing.T) {
	cases := map[string]int{"": 1, "0": 1, "-4": 1, "3": 3, "999": 50, "abc": 1}
	for in, want := range cases {
		if got := validate.Qty(in); got != want {
			t.Fatalf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if n, ok := validate.ID("7"); !ok || n != 7 {
		t.Fatal("valid id rejected")
	}
	for _, bad := range []string{"", "0", "-1", "x"} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestPrice(t *testing.T) {
	if p, ok := validate.Price("10.50"); !ok || p != 10.50 {
		t.Fatal("valid price rejected")
	}
	if _, ok := validate.Price("-1"); ok {
		t.Fatal("negative price accepted")
	}
}

func TestPassword(t *testing.T) {
	if !validate.Password("Str0ngpass") {
		t.Fatal("valid password rejected")
	}
	for _, bad := range []string{"short1A", "alllowercase1", "ALLUPPER1", "NoDigitsHere"} {
		if validate.Password(bad) {
			t.Fatalf("accepted %q", bad)
		}
	}
}
