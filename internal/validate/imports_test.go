// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package validate

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLayeringRules enforces the package layering:
// cmd -> config -> {validate, log, metrics}; cmd -> version; leaf packages import nothing internal above them.
func TestLayeringRules(t *testing.T) {
	projectRoot := findProjectRoot(t)

	violations := []string{}

	// Rule 1: internal/* MUST NOT import cmd/* or the CLI framework
	violations = append(violations, checkForbiddenImport(
		t, projectRoot,
		"internal",
		"github.com/ManuGH/displbe/cmd",
		"Library packages must not import command packages",
	)...)
	violations = append(violations, checkForbiddenImport(
		t, projectRoot,
		"internal",
		"github.com/spf13/cobra",
		"Only cmd/* may depend on the CLI framework",
	)...)

	// Rule 2: validate/log/metrics/version are leaves and MUST NOT import config
	for _, leaf := range []string{"internal/validate", "internal/log", "internal/metrics", "internal/version"} {
		violations = append(violations, checkForbiddenImport(
			t, projectRoot,
			leaf,
			"github.com/ManuGH/displbe/internal/config",
			"Leaf packages must not import the config package",
		)...)
	}

	// Rule 3: validate has no internal dependencies at all
	violations = append(violations, checkForbiddenImport(
		t, projectRoot,
		"internal/validate",
		"github.com/ManuGH/displbe/internal",
		"validate must stay dependency-free",
	)...)

	// Rule 4: log MUST NOT import metrics
	violations = append(violations, checkForbiddenImport(
		t, projectRoot,
		"internal/log",
		"github.com/ManuGH/displbe/internal/metrics",
		"log must not import metrics",
	)...)

	if len(violations) > 0 {
		t.Errorf("Layering violations detected:\n\n%s", strings.Join(violations, "\n"))
	}
}

// TestNoUtilsPackages prevents creation of "utils hell" packages.
func TestNoUtilsPackages(t *testing.T) {
	projectRoot := findProjectRoot(t)

	forbiddenDirs := []string{
		"internal/utils",
		"internal/util",
		"internal/common",
		"internal/helpers",
		"internal/shared",
	}

	violations := []string{}
	for _, dir := range forbiddenDirs {
		fullPath := filepath.Join(projectRoot, dir)
		if _, err := os.Stat(fullPath); err == nil {
			violations = append(violations, fmt.Sprintf("Forbidden package detected: %s", dir))
		}
	}

	if len(violations) > 0 {
		t.Errorf("Utils package violations:\n\n%s\n\nUse semantically named packages instead.",
			strings.Join(violations, "\n"))
	}
}

// --- Helper Functions ---

func checkForbiddenImport(t *testing.T, projectRoot, sourceDir, forbiddenImportPrefix, reason string) []string {
	return checkForbiddenImportExcept(t, projectRoot, sourceDir, forbiddenImportPrefix, nil, reason)
}

func checkForbiddenImportExcept(t *testing.T, projectRoot, sourceDir, forbiddenImportPrefix string, allowedImports []string, reason string) []string {
	t.Helper()

	sourcePath := filepath.Join(projectRoot, sourceDir)
	files, err := findGoFiles(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Directory doesn't exist - no violation
		}
		t.Fatalf("Failed to scan %s: %v", sourceDir, err)
	}

	// Build set of allowed imports for fast lookup
	allowedSet := make(map[string]bool)
	for _, allowed := range allowedImports {
		allowedSet[allowed] = true
	}

	violations := []string{}
	for _, file := range files {
		imports, err := extractImports(file)
		if err != nil {
			t.Logf("Warning: failed to parse %s: %v", file, err)
			continue
		}

		for _, imp := range imports {
			if strings.HasPrefix(imp, forbiddenImportPrefix) {
				// Check if this import is explicitly allowed
				if allowedSet[imp] {
					continue
				}
				relPath, _ := filepath.Rel(projectRoot, file)
				violations = append(violations, fmt.Sprintf(
					"  ❌ %s imports %s\n     Reason: %s",
					relPath, imp, reason,
				))
			}
		}
	}

	return violations
}

func findGoFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func extractImports(filePath string) ([]string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	imports := []string{}
	for _, imp := range f.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)
		imports = append(imports, importPath)
	}
	return imports, nil
}

func findProjectRoot(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	// Walk up until we find go.mod
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("Could not find project root (no go.mod found)")
		}
		dir = parent
	}
}
