//go:build mage

// Package main contains Mage build targets for pubmed-fetcher developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "pubmed-fetcher"
	cmdPkg  = "./cmd/pubmed-fetcher"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs tests with coverage and writes coverage.out.
func Cover() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// All builds after linting and testing.
func All() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}
