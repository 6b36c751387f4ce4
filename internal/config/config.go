// Package config loads the solyn.toml project file. The file is
// optional: the driver falls back to Default when none exists, and
// command-line flags override whatever the file sets.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
)

// FileName is the project file looked up in the project root.
const FileName = "solyn.toml"

// DefaultEVMVersion is assumed when the project file does not pin one.
const DefaultEVMVersion = "prague"

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a Solyn project as it is encoded in TOML.
type tomlProject struct {
	Name       string            `toml:"name"`
	Sources    []string          `toml:"sources,omitempty"`
	Remappings map[string]string `toml:"remappings,omitempty"`
	EVMVersion string            `toml:"evm-version,omitempty"`
	ErrorLimit int               `toml:"error-limit,omitempty"`
	Threads    int               `toml:"threads,omitempty"`
}

// Project is the loaded and validated configuration.
type Project struct {
	// Root is the directory enclosing the project file. Relative
	// source directories resolve against it.
	Root string

	Name       string
	Sources    []string
	Remappings map[string]string
	EVMVersion string
	ErrorLimit int
	Threads    int
}

// evmVersions is the set of hard fork names accepted for evm-version,
// using the solc spellings.
var evmVersions = map[string]bool{
	"homestead":        true,
	"tangerineWhistle": true,
	"spuriousDragon":   true,
	"byzantium":        true,
	"constantinople":   true,
	"petersburg":       true,
	"istanbul":         true,
	"berlin":           true,
	"london":           true,
	"paris":            true,
	"shanghai":         true,
	"cancun":           true,
	"prague":           true,
	"osaka":            true,
}

// Default returns the configuration used when no project file exists:
// sources from the working directory, unlimited errors, one parse
// worker per logical CPU.
func Default() *Project {
	return &Project{
		Root:       ".",
		Sources:    []string{"."},
		EVMVersion: DefaultEVMVersion,
	}
}

// Load reads and validates the project file in dir. The file itself is
// dir/solyn.toml; a missing file surfaces as fs.ErrNotExist so callers
// can fall back to Default.
func Load(dir string) (*Project, error) {
	buff, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	return Parse(buff, dir)
}

// Parse decodes and validates project file contents. root becomes the
// Root of the returned project.
func Parse(data []byte, root string) (*Project, error) {
	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(data, tpf); err != nil {
		return nil, fmt.Errorf("malformed project file: %w", err)
	}
	if tpf.Project == nil {
		return nil, fmt.Errorf("project file is missing the [project] table")
	}

	proj := &Project{
		Root:       root,
		Name:       tpf.Project.Name,
		Sources:    tpf.Project.Sources,
		Remappings: tpf.Project.Remappings,
		EVMVersion: tpf.Project.EVMVersion,
		ErrorLimit: tpf.Project.ErrorLimit,
		Threads:    tpf.Project.Threads,
	}
	if len(proj.Sources) == 0 {
		proj.Sources = []string{"."}
	}
	if proj.EVMVersion == "" {
		proj.EVMVersion = DefaultEVMVersion
	}

	if err := validateProject(proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// validateProject checks that the decoded project contents are valid.
func validateProject(proj *Project) error {
	if proj.Name == "" {
		return fmt.Errorf("missing project name in %s", filepath.Join(proj.Root, FileName))
	}
	if !evmVersions[proj.EVMVersion] {
		return fmt.Errorf("%s is not a known EVM version", proj.EVMVersion)
	}
	if proj.ErrorLimit < 0 {
		return fmt.Errorf("error-limit cannot be negative")
	}
	if proj.Threads < 0 {
		return fmt.Errorf("threads cannot be negative")
	}
	for prefix, target := range proj.Remappings {
		if prefix == "" {
			return fmt.Errorf("remapping to %s has an empty prefix", target)
		}
	}
	return nil
}

// Remap rewrites an import path through the project remappings. The
// longest matching prefix wins; a path no prefix matches is returned
// unchanged.
func (proj *Project) Remap(path string) string {
	best := ""
	for prefix := range proj.Remappings {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return path
	}
	return proj.Remappings[best] + path[len(best):]
}

// SourceFiles walks the configured source directories and returns every
// file whose name ends in ext. Relative directories resolve against
// Root. The list is sorted so the parse order, and with it every span,
// is stable across runs.
func (proj *Project) SourceFiles(ext string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, dir := range proj.Sources {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(proj.Root, dir)
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ext) && !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", dir, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
