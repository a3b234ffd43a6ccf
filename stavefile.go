//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binName = "apidirlint"
	binPath = "bin/" + binName
	mainPkg = "./cmd/" + binName

	goldenDir = "pkg/lint/rules/testdata/golden"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"g":   Test.Golden,
	"s":   Test.Samples,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles bin/apidirlint when any source changed since the last build.
func Build() error {
	stale, err := target.Dir(binPath, "cmd/", "pkg/", "internal/", "go.mod")
	if err != nil {
		return err
	}
	if !stale {
		fmt.Println(binPath, "is up to date")
		return nil
	}
	fmt.Println("Building", binName+"...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, mainPkg)
}

// Check formats, lints and tests in order.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes the binary and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install runs go install with version info.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Uninstall deletes the binary that Install placed in GOBIN.
func Uninstall() error {
	installed, err := installPath()
	if err != nil {
		return err
	}
	err = os.Remove(installed)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Println(binName, "is not installed")
		return nil
	case err != nil:
		return fmt.Errorf("remove %s: %w", installed, err)
	}
	fmt.Println("Removed", installed)
	return nil
}

// Deps downloads and tidies modules.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage renders coverage.out as HTML and opens it.
func Coverage() error {
	st.Deps(Test.Default)
	if err := sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html"); err != nil {
		return err
	}
	return sh.RunV("open", "coverage.html")
}

// Default runs the test suite with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs the test suite printing every test.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Golden rewrites the expected diagnostics next to each golden listing.
func (Test) Golden() error {
	return sh.RunWithV(map[string]string{"UPDATE_GOLDEN": "1"},
		"go", "test", "./pkg/lint/rules", "-run", "TestGolden")
}

// Samples builds the binary and runs it with --summary over every golden listing.
func (Test) Samples() error {
	st.Deps(Build)
	inputs, err := filepath.Glob(filepath.Join(goldenDir, "*.md"))
	if err != nil {
		return fmt.Errorf("glob samples: %w", err)
	}
	for _, input := range inputs {
		fmt.Println("==>", input)
		cmd := exec.Command(binPath, "--summary", input) //nolint:gosec // fixed glob
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		// Exit status 1 means the listing has violations.
		var exitErr *exec.ExitError
		if err := cmd.Run(); err != nil && (!errors.As(err, &exitErr) || exitErr.ExitCode() != 1) {
			return fmt.Errorf("validate %s: %w", input, err)
		}
	}
	return nil
}

// Default runs golangci-lint with --fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without touching files.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt rewrites files with gofmt.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when gofmt would change a file.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate runs every check CI requires before merge.
func (CI) Gate() error {
	st.SerialDeps(Lint.FmtCheck, Lint.Vet, Lint.CI, Build, Test.Default, CI.ModTidy, CI.Cross)
	fmt.Println("✓ gate passed")
	return nil
}

// ModTidy fails when go mod tidy changes the module files.
func (CI) ModTidy() error {
	files := []string{"go.mod", "go.sum"}
	before := make([][]byte, len(files))
	for i, name := range files {
		before[i], _ = os.ReadFile(name)
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	for i, name := range files {
		after, _ := os.ReadFile(name)
		if !bytes.Equal(before[i], after) {
			return fmt.Errorf("%s changed after go mod tidy", name)
		}
	}
	return nil
}

// Cross builds the binary for each release platform.
func (CI) Cross() error {
	for _, platform := range []string{
		"linux/amd64", "linux/arm64",
		"darwin/amd64", "darwin/arm64",
		"windows/amd64", "freebsd/amd64",
	} {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

// Default runs the benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "tool", "gotestsum", "-f", "pkgname-and-test-fails",
		"--", "-run=^$", "-bench=.", "-benchmem", "./...")
}

func gotestsum(format string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", format, "--",
		"-race", "-p", procs, "-parallel", procs,
		"-coverprofile=coverage.out", "-covermode=atomic", "./...")
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects the values main reports from the version command.
func ldflags() string {
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}

func installPath() (string, error) {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return filepath.Join(gobin, binName), nil
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "bin", binName), nil
}
