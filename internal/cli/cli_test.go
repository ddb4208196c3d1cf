package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inappwebview/optionmenu/pkg/optionmenu"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(constants.ConfigPathEnvVar, "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

// writeItems writes a YAML item file with n enabled rows named A0, A1, ...
func writeItems(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("items:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  - label: A%d\n", i)
	}
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSnapshot(t *testing.T) {
	three := writeItems(t, 3)
	twenty := writeItems(t, 20)

	tests := []struct {
		name  string
		items string
		args  []string
		want  string
	}{
		{"defaults", three, []string{"--x", "10", "--y", "10"}, "120x92+10+10 hover=-1 scroll=0"},
		{"keys", three, []string{"--keys", "down,down"}, "120x92+0+0 hover=1 scroll=0"},
		{"pointer", three, []string{"--pointer", "20,46"}, "120x92+0+0 hover=1 scroll=0"},
		{"min width", three, []string{"--min-width", "300"}, "300x92+0+0 hover=-1 scroll=0"},
		{"shift and flip", three, []string{"--screen", "200x100", "--x", "150", "--y", "50"}, "120x92+80+0 hover=-1 scroll=0"},
		{"scroll down", twenty, []string{"--scroll", "3"}, "120x344+0+0 hover=-1 scroll=84"},
		{"scroll clamps", twenty, []string{"--scroll", "50"}, "120x344+0+0 hover=-1 scroll=224"},
		{"scroll up", twenty, []string{"--scroll", "-3"}, "120x344+0+0 hover=-1 scroll=0"},
		{"keys after scroll", twenty, []string{"--scroll", "5", "--keys", "down"}, "120x344+0+0 hover=0 scroll=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png := filepath.Join(t.TempDir(), "m.png")
			args := append([]string{"snapshot", tt.items, "-o", png}, tt.args...)

			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if want := png + " " + tt.want + "\n"; out != want {
				t.Fatalf("output = %q, want %q", out, want)
			}
			if info, err := os.Stat(png); err != nil || info.Size() == 0 {
				t.Fatalf("png not written: %v", err)
			}
		})
	}
}

func TestSnapshotSampleItems(t *testing.T) {
	for _, lang := range []string{"en", "de", "ja"} {
		png := filepath.Join(t.TempDir(), lang+".png")
		out, err := run(t, "snapshot", "--lang", lang, "-o", png)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if !strings.HasPrefix(out, png+" ") {
			t.Fatalf("%s: output = %q", lang, out)
		}
		if _, err := os.Stat(png); err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
	}
}

func TestSnapshotErrors(t *testing.T) {
	items := writeItems(t, 3)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("items: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{items, "--keys", "down,sideways"}, `unknown key "sideways"`},
		{"key closes popup", []string{items, "--keys", "escape"}, "popup closed after key"},
		{"screen without x", []string{items, "--screen", "wide"}, "want WIDTHxHEIGHT"},
		{"screen zero width", []string{items, "--screen", "0x100"}, "bad width"},
		{"screen bad height", []string{items, "--screen", "100x"}, "bad height"},
		{"pointer without comma", []string{items, "--pointer", "20"}, "want X,Y"},
		{"pointer not a number", []string{items, "--pointer", "a,4"}, `point "a,4"`},
		{"bad language", []string{"--lang", "not a tag!"}, ""},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.yaml")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png := filepath.Join(t.TempDir(), "m.png")
			_, err := run(t, append([]string{"snapshot", "-o", png}, tt.args...)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
			if _, statErr := os.Stat(png); statErr == nil {
				t.Fatal("png written despite the error")
			}
		})
	}

	t.Run("no items", func(t *testing.T) {
		_, err := run(t, "snapshot", empty, "-o", filepath.Join(t.TempDir(), "m.png"))
		if !errors.Is(err, optionmenu.ErrNoItems) {
			t.Fatalf("err = %v, want ErrNoItems", err)
		}
	})
}

func TestBadConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "optionmenu.toml")
	if err := os.WriteFile(config, []byte("[theme]\nhover = \"orange\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "languages", "--config", config)
	if !optionmenu.IsInfrastructureError(err) {
		t.Fatalf("err = %v, want an infrastructure error", err)
	}
}

func TestLanguages(t *testing.T) {
	out, err := run(t, "languages")
	if err != nil {
		t.Fatalf("languages: %v", err)
	}

	got := strings.Fields(out)
	if len(got) != 3 {
		t.Fatalf("languages = %q", out)
	}
	for _, want := range []string{"en", "de", "ja"} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("%s missing from %q", want, out)
		}
	}

	if _, err := run(t, "languages", "extra"); err == nil {
		t.Fatal("languages accepted an argument")
	}
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in      string
		want    optionmenu.Rect
		wantErr bool
	}{
		{in: "1920x1080", want: optionmenu.Rect{W: 1920, H: 1080}},
		{in: "800X600", want: optionmenu.Rect{W: 800, H: 600}},
		{in: "800", wantErr: true},
		{in: "-1x600", wantErr: true},
		{in: "800x0", wantErr: true},
		{in: "axb", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseScreen(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseScreen(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseScreen(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    optionmenu.Point
		wantErr bool
	}{
		{in: "20,46", want: optionmenu.Point{X: 20, Y: 46}},
		{in: " -5 , 7 ", want: optionmenu.Point{X: -5, Y: 7}},
		{in: "20", wantErr: true},
		{in: "x,1", wantErr: true},
		{in: "1,", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePoint(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
