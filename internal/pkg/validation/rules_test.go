package validation

import "testing"

func TestIsValidStars(t *testing.T) {
	for stars := 1; stars <= 5; stars++ {
		if !IsValidStars(stars) {
			t.Fatalf("expected %d stars to be valid", stars)
		}
	}
	for _, stars := range []int{0, -1, 6, 100} {
		if IsValidStars(stars) {
			t.Fatalf("expected %d stars to be invalid", stars)
		}
	}
}

func TestIsValidFeature(t *testing.T) {
	for _, feature := range ReviewFeatures {
		if !IsValidFeature(feature) {
			t.Fatalf("expected feature %q to be valid", feature)
		}
	}
	if IsValidFeature("invalid_choice") {
		t.Fatalf("expected unknown feature to be invalid")
	}
	if IsValidFeature("") {
		t.Fatalf("expected empty feature to be invalid")
	}
}

func TestUsernamePattern(t *testing.T) {
	valid := []string{"admin1", "user.name", "a_b_c", "Student2026"}
	for _, u := range valid {
		if !CompiledPatterns.Username.MatchString(u) {
			t.Fatalf("expected username %q to match", u)
		}
	}
	invalid := []string{"ab", "has space", "dash-ed", ""}
	for _, u := range invalid {
		if CompiledPatterns.Username.MatchString(u) {
			t.Fatalf("expected username %q not to match", u)
		}
	}
}
