package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPackage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "saffron.toml"), `
[package]
name = "app"
modules = ["src/Main.sfr"]
`)
	writeFile(t, filepath.Join(dir, "src", "Main.sfr"), "module Main where\nmain = run\n")

	pkg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pkg.Name != "app" {
		t.Errorf("Name = %q, want %q", pkg.Name, "app")
	}
	if len(pkg.Modules) != 1 {
		t.Fatalf("len(Modules) = %d, want 1", len(pkg.Modules))
	}
	if pkg.Modules[0].Name != "Main" {
		t.Errorf("module name = %q, want %q", pkg.Modules[0].Name, "Main")
	}
}

func TestLoadPackageWithImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app", "saffron.toml"), `
[package]
name = "app"
modules = ["Main.sfr"]

[imports]
util = { path = "../util" }
`)
	writeFile(t, filepath.Join(dir, "app", "Main.sfr"), "module Main where\n")
	writeFile(t, filepath.Join(dir, "util", "saffron.toml"), `
[package]
name = "util"
modules = ["Util.sfr"]
`)
	writeFile(t, filepath.Join(dir, "util", "Util.sfr"), "module Util where\nhelp = me\n")

	pkg, err := Load(filepath.Join(dir, "app"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(pkg.Imports) != 1 {
		t.Fatalf("len(Imports) = %d, want 1", len(pkg.Imports))
	}
	if pkg.Imports[0].Name != "util" {
		t.Errorf("imported package = %q, want %q", pkg.Imports[0].Name, "util")
	}
	if len(pkg.Imports[0].Modules) != 1 {
		t.Errorf("imported modules = %d, want 1", len(pkg.Imports[0].Modules))
	}
}

func TestLoadDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "saffron.toml"), `
[package]
name = "a"

[imports]
b = { path = "../b" }
`)
	writeFile(t, filepath.Join(dir, "b", "saffron.toml"), `
[package]
name = "b"

[imports]
a = { path = "../a" }
`)

	_, err := Load(filepath.Join(dir, "a"))
	if err == nil {
		t.Fatal("Load succeeded, want cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("err = %v, want package cycle", err)
	}
}

func TestLoadReportsModuleErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "saffron.toml"), `
[package]
name = "app"
modules = ["Broken.sfr"]
`)
	writeFile(t, filepath.Join(dir, "Broken.sfr"), "= nonsense\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load succeeded, want module errors")
	}
	var moduleErrs *ModuleErrors
	if !errors.As(err, &moduleErrs) {
		t.Fatalf("err = %T, want *ModuleErrors", err)
	}
	if len(moduleErrs.Errs) == 0 {
		t.Error("Errs empty, want parse errors")
	}
}

func TestLoadMissingName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "saffron.toml"), `
[package]
modules = []
`)
	if _, err := Load(dir); err == nil {
		t.Fatal("Load succeeded, want missing name error")
	}
}
