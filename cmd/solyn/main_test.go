package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/solyn-lang/solyn/internal/config"
)

func TestLoadProjectFallback(t *testing.T) {
	dir := t.TempDir()

	proj, err := loadProject(dir)
	if err != nil {
		t.Fatalf("loadProject returned error for a bare directory: %v", err)
	}
	if proj.Root != dir {
		t.Errorf("proj.Root wrong. expected=%q, got=%q", dir, proj.Root)
	}
	if proj.EVMVersion != config.DefaultEVMVersion {
		t.Errorf("proj.EVMVersion wrong. expected=%q, got=%q",
			config.DefaultEVMVersion, proj.EVMVersion)
	}
}

func TestLoadProjectReadsFile(t *testing.T) {
	dir := t.TempDir()
	contents := "[project]\nname = \"demo\"\nthreads = 2\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}

	proj, err := loadProject(dir)
	if err != nil {
		t.Fatalf("loadProject returned error: %v", err)
	}
	if proj.Name != "demo" {
		t.Errorf("proj.Name wrong. expected=%q, got=%q", "demo", proj.Name)
	}
	if proj.Threads != 2 {
		t.Errorf("proj.Threads wrong. expected=%d, got=%d", 2, proj.Threads)
	}
}

func TestLoadProjectBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("[project]\n"), 0o644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}

	if _, err := loadProject(dir); err == nil {
		t.Fatal("loadProject accepted a project file without a name")
	}
}

func TestResolveInputsExplicit(t *testing.T) {
	d := &driver{args: []string{"a.sol", "b.sol"}}

	got, err := d.resolveInputs()
	if err != nil {
		t.Fatalf("resolveInputs returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.sol", "b.sol"}) {
		t.Errorf("resolveInputs wrong. got=%v", got)
	}
}

func TestResolveInputsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.sol", "two.sol", "asm.yul"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	proj := &config.Project{Root: dir, Sources: []string{"."}}

	d := &driver{proj: proj}
	got, err := d.resolveInputs()
	if err != nil {
		t.Fatalf("resolveInputs returned error: %v", err)
	}
	expected := []string{filepath.Join(dir, "one.sol"), filepath.Join(dir, "two.sol")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("resolveInputs wrong.\nexpected=%v\ngot=%v", expected, got)
	}

	dy := &driver{proj: proj, yul: true}
	got, err = dy.resolveInputs()
	if err != nil {
		t.Fatalf("resolveInputs returned error: %v", err)
	}
	expected = []string{filepath.Join(dir, "asm.yul")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("resolveInputs wrong for yul.\nexpected=%v\ngot=%v", expected, got)
	}
}

func TestRunCleanFile(t *testing.T) {
	quiet = true
	defer func() { quiet = false }()

	dir := t.TempDir()
	src := "pragma solidity ^0.8.0;\n\ncontract Counter {\n    uint256 total;\n\n    function bump() public { total += 1; }\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "counter.sol"), []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := &driver{proj: &config.Project{Root: dir, Sources: []string{"."}}}
	clean, err := d.run()
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !clean {
		t.Fatal("run reported errors for a clean file")
	}
}
