package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	deperrors "depsheet/pkg/errors"
)

// failReader fails the test if anything tries to read it. Used to prove
// configuration errors surface before stdin is consumed.
type failReader struct{ t *testing.T }

func (r failReader) Read([]byte) (int, error) {
	r.t.Fatal("stdin was read before configuration was validated")
	return 0, io.EOF
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	return root, &out
}

func TestExportEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		`+--- com.example:alpha:1.0 -> 1.1`,
		`|    \--- com.example:beta:2.0`,
		`\--- com.example:beta:2.0`,
	}, "\n")

	root, out := newTestRoot(t)
	root.SetIn(strings.NewReader(input))
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "group,name,version\ncom.example,alpha,1.1\ncom.example,beta,2.0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestExportJSONFormat(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetIn(strings.NewReader("+--- com.x:y:1.0\n"))
	root.SetArgs([]string{"--format", "json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), `"version": "1.0"`) {
		t.Errorf("json output missing version:\n%s", out.String())
	}
}

func TestExportUnknownFormatBeforeRead(t *testing.T) {
	root, _ := newTestRoot(t)
	root.SetIn(failReader{t})
	root.SetArgs([]string{"--format", "yaml"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !deperrors.Is(err, deperrors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", deperrors.GetCode(err))
	}
}

func TestExportSkipPrettyParseError(t *testing.T) {
	root, _ := newTestRoot(t)
	root.SetIn(strings.NewReader("com.x:y:1.0\nhello world\n"))
	root.SetArgs([]string{"--skip-pretty"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !deperrors.Is(err, deperrors.ErrCodeParse) {
		t.Errorf("error code = %v, want PARSE_ERROR", deperrors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "line 2") || !strings.Contains(err.Error(), "hello world") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestExportStandardModeToleratesNoise(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetIn(strings.NewReader("hello world\n\n+--- com.x:y:1.0\n"))
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "com.x,y,1.0") {
		t.Errorf("output missing artifact:\n%s", out.String())
	}
}

func TestExportEmptyInput(t *testing.T) {
	root, out := newTestRoot(t)
	root.SetIn(strings.NewReader(""))
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "group,name,version\n" {
		t.Errorf("output = %q, want header only", out.String())
	}
}

func TestExportRejectsPositionalArgs(t *testing.T) {
	root, _ := newTestRoot(t)
	root.SetIn(strings.NewReader(""))
	root.SetArgs([]string{"report.txt"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
