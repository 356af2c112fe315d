package manifest

import "testing"

const sample = `
entries:
  - component: esxi
    version: "8.0.2"
    build: "22380479"
  - component: esxi
    version: "7.0.3"
    build: "21930508"
`

func TestParse_Valid(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(m.Entries))
	}

	build, ok := m.ExpectedBuild("7.0.3")
	if !ok || build != "21930508" {
		t.Fatalf("ExpectedBuild(7.0.3) = %q, %v; want 21930508, true", build, ok)
	}
	if _, ok := m.ExpectedBuild("6.7.0"); ok {
		t.Fatal("ExpectedBuild(6.7.0) = true for uncovered version")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("entries: []")); err == nil {
		t.Fatal("Parse() accepted empty manifest")
	}
}

func TestParse_MissingBuild(t *testing.T) {
	if _, err := Parse([]byte("entries:\n  - version: \"8.0.2\"\n")); err == nil {
		t.Fatal("Parse() accepted entry without build")
	}
}

func TestExpectedBuild_NilManifest(t *testing.T) {
	var m *Manifest
	if _, ok := m.ExpectedBuild("8.0.2"); ok {
		t.Fatal("nil manifest reported a build")
	}
}
