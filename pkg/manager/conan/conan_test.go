package conan

import "testing"

func TestNew(t *testing.T) {
	m := New()
	if m.Enabled {
		t.Error("conan should be disabled by default")
	}
	if m.HasExtractor() {
		t.Error("conan should be definition only")
	}
	for _, path := range []string{"conanfile.txt", "lib/conanfile.py"} {
		if !m.Supports(path) {
			t.Errorf("Supports(%q) = false", path)
		}
	}
	if m.Supports("conanfile.json") {
		t.Error("Supports(conanfile.json) = true")
	}
}
