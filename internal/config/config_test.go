package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	contents := `
[project]
name = "token"
sources = ["contracts", "lib"]
evm-version = "cancun"
error-limit = 64
threads = 4

[project.remappings]
"@oz/" = "lib/openzeppelin/"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if proj.Name != "token" {
		t.Errorf("proj.Name wrong. expected=%q, got=%q", "token", proj.Name)
	}
	if proj.Root != dir {
		t.Errorf("proj.Root wrong. expected=%q, got=%q", dir, proj.Root)
	}
	if !reflect.DeepEqual(proj.Sources, []string{"contracts", "lib"}) {
		t.Errorf("proj.Sources wrong. got=%v", proj.Sources)
	}
	if proj.EVMVersion != "cancun" {
		t.Errorf("proj.EVMVersion wrong. expected=%q, got=%q", "cancun", proj.EVMVersion)
	}
	if proj.ErrorLimit != 64 {
		t.Errorf("proj.ErrorLimit wrong. expected=%d, got=%d", 64, proj.ErrorLimit)
	}
	if proj.Threads != 4 {
		t.Errorf("proj.Threads wrong. expected=%d, got=%d", 4, proj.Threads)
	}
	if got := proj.Remappings["@oz/"]; got != "lib/openzeppelin/" {
		t.Errorf("proj.Remappings wrong. expected=%q, got=%q", "lib/openzeppelin/", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for a missing project file, got %v", err)
	}
}

func TestParseDefaults(t *testing.T) {
	proj, err := Parse([]byte("[project]\nname = \"bare\"\n"), "/srv/proj")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if !reflect.DeepEqual(proj.Sources, []string{"."}) {
		t.Errorf("proj.Sources default wrong. got=%v", proj.Sources)
	}
	if proj.EVMVersion != DefaultEVMVersion {
		t.Errorf("proj.EVMVersion default wrong. expected=%q, got=%q",
			DefaultEVMVersion, proj.EVMVersion)
	}
	if proj.ErrorLimit != 0 {
		t.Errorf("proj.ErrorLimit default wrong. expected=%d, got=%d", 0, proj.ErrorLimit)
	}
	if proj.Root != "/srv/proj" {
		t.Errorf("proj.Root wrong. expected=%q, got=%q", "/srv/proj", proj.Root)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"[project]\nname = \"ok\"\n", false},
		{"", true},
		{"[project]\nsources = [\"src\"]\n", true},
		{"[project]\nname = \"x\"\nevm-version = \"ethereum\"\n", true},
		{"[project]\nname = \"x\"\nerror-limit = -1\n", true},
		{"[project]\nname = \"x\"\nthreads = -2\n", true},
		{"[project\n", true},
	}

	for i, tt := range tests {
		_, err := Parse([]byte(tt.input), ".")
		if (err != nil) != tt.wantErr {
			t.Errorf("tests[%d] - Parse error = %v, wantErr %v", i, err, tt.wantErr)
		}
	}
}

func TestRemap(t *testing.T) {
	proj := &Project{Remappings: map[string]string{
		"@oz/":          "lib/openzeppelin/",
		"@oz/security/": "lib/oz-security/",
	}}

	tests := []struct {
		path     string
		expected string
	}{
		{"@oz/token/ERC20.sol", "lib/openzeppelin/token/ERC20.sol"},
		{"@oz/security/Pausable.sol", "lib/oz-security/Pausable.sol"},
		{"./local/Util.sol", "./local/Util.sol"},
	}

	for i, tt := range tests {
		if got := proj.Remap(tt.path); got != tt.expected {
			t.Errorf("tests[%d] - Remap wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"contracts/Token.sol",
		"contracts/vendor/Proxy.sol",
		"contracts/README.md",
		"lib/Math.sol",
	} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("// stub\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	// The duplicate entry must not duplicate results.
	proj := &Project{Root: dir, Sources: []string{"contracts", "lib", "contracts"}}

	files, err := proj.SourceFiles(".sol")
	if err != nil {
		t.Fatalf("SourceFiles returned error: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "contracts/Token.sol"),
		filepath.Join(dir, "contracts/vendor/Proxy.sol"),
		filepath.Join(dir, "lib/Math.sol"),
	}
	if !reflect.DeepEqual(files, expected) {
		t.Errorf("SourceFiles wrong.\nexpected=%v\ngot=%v", expected, files)
	}
}
