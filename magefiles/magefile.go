// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for resume-parser developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "resume-parser"
	cmdPkg     = "./cmd/resume-parser"
	sampleFile = "testdata/sample_resume.txt"
)

// Default is the target run by a bare `mage`.
var Default = Build

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

// Test runs every package test with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs Vet and Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Sample builds the CLI and parses the bundled sample resume with a summary.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "parse", sampleFile, "--pretty", "--verbose")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// skipDir reports directories excluded from the metrics.
func skipDir(name string) bool {
	return name == binDir || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				total++
			}
		}
		return sc.Err()
	})
	return total, err
}

// countDocWords counts words in the Markdown files at the top of root.
func countDocWords(root string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
	}
	return total, nil
}
