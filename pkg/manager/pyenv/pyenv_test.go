package pyenv

import (
	"testing"

	"github.com/matzehuels/depscan/pkg/datasource"
)

func TestExtract(t *testing.T) {
	pf := Extract("3.12.1\n", ".python-version")
	if pf == nil || len(pf.Deps) != 1 {
		t.Fatalf("Extract() = %+v, want one dep", pf)
	}
	dep := pf.Deps[0]
	if dep.PackageName != "python" || dep.CommitMessageTopic != "Python" {
		t.Errorf("dep = %+v", dep)
	}
	if dep.Datasource() != datasource.Docker || dep.CurrentValue() != "3.12.1" {
		t.Errorf("dep = %s@%s, want docker@3.12.1", dep.Datasource(), dep.CurrentValue())
	}
}

func TestExtract_Blank(t *testing.T) {
	if pf := Extract("\n\t\n", ".python-version"); pf != nil {
		t.Errorf("Extract(blank) = %+v, want nil", pf)
	}
}

func TestNew(t *testing.T) {
	m := New()
	if m.Name != Name || !m.Supports("services/api/.python-version") {
		t.Errorf("New() = %+v", m)
	}
}
