package loader

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestFileLoaderMissingFile(t *testing.T) {
	m, err := NewFileLoaderWithFS(fstest.MapFS{}, "nope.toml").Load()
	if err != nil || m != nil {
		t.Fatalf("Load() = %v, %v; want nil, nil", m, err)
	}
}

func TestFileLoaderFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("[editor]\ntab_width = 3\n")},
		"a.yml":  {Data: []byte("editor:\n  tab_width: 3\n")},
	}
	for _, path := range []string{"a.toml", "a.yml"} {
		m, err := NewFileLoaderWithFS(fsys, path).Load()
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		editor, ok := m["editor"].(map[string]any)
		if !ok {
			t.Fatalf("%s: editor section is %T", path, m["editor"])
		}
		if editor["tab_width"] == nil {
			t.Errorf("%s: tab_width missing", path)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("bad.toml", FormatTOML, []byte("a = 1\nb = \n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"c.toml": FormatTOML,
		"c.YAML": FormatYAML,
		"c.yml":  FormatYAML,
		"c":      FormatTOML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{"editor": map[string]any{"tab_width": 4, "line_numbers": true}}
	src := map[string]any{"editor": map[string]any{"tab_width": 8}, "log": "x"}
	got := DeepMerge(dst, src)

	editor := got["editor"].(map[string]any)
	if editor["tab_width"] != 8 || editor["line_numbers"] != true {
		t.Errorf("editor = %v", editor)
	}
	if got["log"] != "x" {
		t.Errorf("log = %v", got["log"])
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("RED_", map[string]string{"RED_TAB_WIDTH": "editor.tab_width"}).
		WithEnviron(func() []string {
			return []string{"RED_TAB_WIDTH=8", "RED_LOG_FILE=", "RED_X=1", "OTHER=1", "RED_EDITOR_LINE_NUMBERS=yes"}
		})
	m, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}

	editor := m["editor"].(map[string]any)
	if editor["tab_width"] != int64(8) {
		t.Errorf("tab_width = %#v", editor["tab_width"])
	}
	if editor["line_numbers"] != true {
		t.Errorf("line_numbers = %#v", editor["line_numbers"])
	}
	if log := m["log"].(map[string]any); log["file"] != "" {
		t.Errorf("empty value should be kept, got %#v", log["file"])
	}
	if _, ok := m["x"]; ok {
		t.Error("RED_X has no section and should be ignored")
	}
}

func TestEnvLoaderKnownPaths(t *testing.T) {
	l := NewEnvLoader("RED_", map[string]string{"RED_TAB_WIDTH": "editor.tab_width"}).
		WithKnownPaths("editor.tab_width", "log.level").
		WithEnviron(func() []string {
			return []string{"RED_TAB_WIDTH=8", "RED_HAT_RELEASE=9", "RED_LOG_LEVEL=warn"}
		})
	m, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m["hat"]; ok {
		t.Errorf("unknown path kept: %#v", m)
	}
	if m["editor"].(map[string]any)["tab_width"] != int64(8) {
		t.Errorf("mapped variable dropped: %#v", m)
	}
	if m["log"].(map[string]any)["level"] != "warn" {
		t.Errorf("known prefixed variable dropped: %#v", m)
	}
}
