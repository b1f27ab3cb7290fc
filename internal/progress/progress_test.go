package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{W: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "article/1.html")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Building site: 2 pages", "[1/2] index.html", "[2/2] article/1.html", "Site build complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterWithoutStart(t *testing.T) {
	r := &TerminalReporter{W: &bytes.Buffer{}}
	r.Update(1, "ignored")
	r.Finish()
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestSpinnerShowHide(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Cargando")

	s.Hide()
	if s.Visible() {
		t.Fatal("spinner visible before Show")
	}

	s.Show()
	s.Show()
	if !s.Visible() {
		t.Fatal("spinner not visible after Show")
	}
	time.Sleep(2 * spinnerInterval)
	s.Hide()
	if s.Visible() {
		t.Error("spinner still visible after Hide")
	}

	s.Show()
	s.Hide()
	if s.Visible() {
		t.Error("spinner visible after second Hide")
	}
}
