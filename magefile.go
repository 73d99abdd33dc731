//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/darianmavgo/mkinsert/config"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the project binaries into the bin/ directory.
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", "./bin", "./...")
}

// Install copies the mkinsert binary to /usr/local/bin.
func Install() error {
	mg.Deps(Build)
	fmt.Println("Installing...")
	return sh.Run("cp", "bin/mkinsert", "/usr/local/bin/mkinsert")
}

// Generate builds the binary and writes products_insert.sql from all_products.csv.
func Generate() error {
	mg.Deps(Build)
	fmt.Println("Generating", config.DefaultOutput, "...")
	return sh.RunV("./bin/mkinsert")
}

// Config writes a mkinsert.hcl holding the default settings, unless one exists.
func Config() error {
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return fmt.Errorf("%s already exists", config.DefaultFile)
	}
	fmt.Println("Writing", config.DefaultFile, "...")
	return config.Export(config.DefaultFile, config.DefaultConfig())
}

// Test runs all tests in the project with verbose output.
func Test() error {
	fmt.Println("Running Tests...")
	return sh.Run("go", "test", "-v", "./...")
}

// Clean removes the bin directory and generated SQL.
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	if err := os.Remove(config.DefaultOutput); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Running go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Check runs formatting and linting checks (fmt, vet).
func Check() error {
	mg.Deps(Fmt, Vet)
	return nil
}

// Fmt runs go fmt ./...
func Fmt() error {
	fmt.Println("Running go fmt...")
	return sh.Run("go", "fmt", "./...")
}

// Vet runs go vet ./...
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}
