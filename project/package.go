// Package project loads Saffron packages from saffron.toml manifests. A
// package owns its local modules and, recursively, the packages it
// imports; ownership is a strict tree.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/saffron/parser"
)

const ManifestName = "saffron.toml"

// Package is a named collection of local modules and imported packages.
type Package struct {
	Name    string
	Root    string
	Modules []*parser.Module
	Imports []*Package
}

// ModuleErrors carries the parse errors of one module file.
type ModuleErrors struct {
	Path string
	Errs []*parser.ParseError
}

func (e *ModuleErrors) Error() string {
	return fmt.Sprintf("%s: %d parse errors", e.Path, len(e.Errs))
}

type manifest struct {
	Package manifestPackage           `toml:"package"`
	Imports map[string]manifestImport `toml:"imports"`
}

type manifestPackage struct {
	Name    string   `toml:"name"`
	Modules []string `toml:"modules"`
}

type manifestImport struct {
	Path string `toml:"path"`
}

// Load reads <dir>/saffron.toml, parses every listed module file and
// recursively loads imported packages. A package path appearing twice on
// the active load path is a cycle and fails.
func Load(dir string) (*Package, error) {
	return load(dir, make(map[string]bool))
}

func load(dir string, active map[string]bool) (*Package, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if active[root] {
		return nil, fmt.Errorf("package cycle through %s", root)
	}
	active[root] = true
	defer delete(active, root)

	path := filepath.Join(root, ManifestName)
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}

	pkg := &Package{
		Name: m.Package.Name,
		Root: root,
	}

	for _, rel := range m.Package.Modules {
		module, err := loadModule(filepath.Join(root, rel))
		if err != nil {
			return nil, err
		}
		pkg.Modules = append(pkg.Modules, module)
	}

	names := make([]string, 0, len(m.Imports))
	for name := range m.Imports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child, err := load(filepath.Join(root, m.Imports[name].Path), active)
		if err != nil {
			return nil, err
		}
		pkg.Imports = append(pkg.Imports, child)
	}

	return pkg, nil
}

func loadModule(path string) (*parser.Module, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	module, errs := parser.ParseDocument(string(text), path)
	if len(errs) > 0 {
		return nil, &ModuleErrors{Path: path, Errs: errs}
	}
	return module, nil
}
