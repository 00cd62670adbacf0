package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/saffron/parser"
	"github.com/dhamidi/saffron/project"
)

var (
	checkFileColor  = color.New(color.Bold)
	checkErrorColor = color.New(color.FgRed, color.Bold)
	checkOkColor    = color.New(color.FgGreen)
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file-or-package-dir>",
		Short: "Check a .sfr file or a saffron.toml package for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return checkPackage(path)
			}
			return checkFile(path)
		},
	}
}

func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	module, errs := parser.ParseDocument(string(data), path)
	if len(errs) > 0 {
		reportErrors(path, errs)
		return fmt.Errorf("%d errors", len(errs))
	}

	checkOkColor.Printf("ok ")
	fmt.Printf("module %s (%d imports, %d definitions)\n",
		module.Name, len(module.Imports), len(module.Defs))
	return nil
}

func checkPackage(dir string) error {
	pkg, err := project.Load(dir)
	if err != nil {
		var moduleErrs *project.ModuleErrors
		if errors.As(err, &moduleErrs) {
			reportErrors(moduleErrs.Path, moduleErrs.Errs)
			return fmt.Errorf("%d errors", len(moduleErrs.Errs))
		}
		return err
	}

	reportPackage(pkg, "")
	return nil
}

func reportPackage(pkg *project.Package, indent string) {
	checkOkColor.Printf("%sok ", indent)
	fmt.Printf("package %s (%d modules)\n", pkg.Name, len(pkg.Modules))
	for _, imported := range pkg.Imports {
		reportPackage(imported, indent+"  ")
	}
}

func reportErrors(path string, errs []*parser.ParseError) {
	checkFileColor.Fprintln(os.Stderr, path)
	for _, err := range errs {
		checkErrorColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
	}
}
