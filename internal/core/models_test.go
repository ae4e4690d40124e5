package core

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Category(%q).Valid() = false", string(c))
		}
	}
	for _, bad := range []Category{"", "samba", "Angola", "ANGOLA", "saobentogrande"} {
		if bad.Valid() {
			t.Errorf("Category(%q).Valid() = true, want false", string(bad))
		}
	}
}

func TestFontSizeValid(t *testing.T) {
	for _, f := range FontSizes() {
		if !f.Valid() {
			t.Errorf("FontSize(%q).Valid() = false", string(f))
		}
	}
	for _, bad := range []FontSize{"", "huge", "Medium", "XL"} {
		if bad.Valid() {
			t.Errorf("FontSize(%q).Valid() = true, want false", string(bad))
		}
	}
}

func TestPrompterDefaults(t *testing.T) {
	if DefaultIntervalSeconds != 120 {
		t.Errorf("DefaultIntervalSeconds = %d, want 120", DefaultIntervalSeconds)
	}
	if DefaultFontSize != FontMedium {
		t.Errorf("DefaultFontSize = %q, want medium", string(DefaultFontSize))
	}
	if !DefaultDarkMode {
		t.Error("DefaultDarkMode = false, want true")
	}
}
