package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "apidirlint"

// ConfigPaths holds the configuration files found for each layer. An empty
// field means the layer has no file.
type ConfigPaths struct {
	System   string // /etc/apidirlint/config.yaml
	User     string // $XDG_CONFIG_HOME/apidirlint/config.yaml
	Project  string // nearest .apidirlint.yml
	Explicit string // --config
}

// ProjectConfigFiles are the project config file names, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{".apidirlint.yml", ".apidirlint.yaml"}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	layerConfigFiles = []string{"config.yaml", "config.yml"}
	vcsRootMarkers   = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the system, user and project configuration files.
// The project file is searched for upward from workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{Project: project}
	if dir := systemConfigDir(); dir != "" {
		paths.System = firstFile(dir, layerConfigFiles)
	}
	if dir := userConfigDir(); dir != "" {
		paths.User = firstFile(dir, layerConfigFiles)
	}
	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	root := os.Getenv("ProgramData")
	if root == "" {
		root = `C:\ProgramData`
	}
	return filepath.Join(root, appName)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks from startDir toward the filesystem root and returns
// the first project config file it sees. The walk ends without a result at a
// VCS root or the home directory. An empty startDir means the working directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if found := firstFile(dir, ProjectConfigFiles); found != "" {
			return found, nil
		}
		if dir == home || hasDir(dir, vcsRootMarkers) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func hasDir(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
