package vectors

import (
	"path/filepath"
	"testing"
)

func TestCoreSuite(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "core.toml"))
	if err != nil {
		t.Fatalf("load suite: %v", err)
	}
	if s.Name != "core" || len(s.Cases) == 0 {
		t.Fatalf("suite loaded oddly: name=%q cases=%d", s.Name, len(s.Cases))
	}
	for _, err := range s.Run() {
		t.Errorf("%v", err)
	}
}

func TestRunCaseRejectsBadInput(t *testing.T) {
	cases := []Case{
		{Op: "frobnicate", A: "1", B: "2", Want: "3"},
		{Op: "add", A: "nope", B: "2", Want: "3"},
		{Op: "add", A: "1", B: "2", Want: "nope"},
		{Op: "sign", A: "1", Want: "big"},
	}
	for _, c := range cases {
		s := &Suite{Name: "bad", Cases: []Case{c}}
		if errs := s.Run(); len(errs) != 1 {
			t.Fatalf("case %+v: got %d errors, want 1", c, len(errs))
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "absent.toml")); err == nil {
		t.Fatalf("loading a missing suite did not fail")
	}
}
