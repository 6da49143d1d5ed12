package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders for the languages the extractors
// cover.
type Detector struct {
	markers []string
}

// NewDetector creates a project detector.
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"go.mod",       // Go modules
			"package.json", // JavaScript/Node projects
			"pom.xml",      // Java/Maven projects
			".git",         // generic VCS marker
		},
	}
}

// Detect identifies the project root containing the given path.
func (d *Detector) Detect(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	if rootPath == "" {
		return nil, fmt.Errorf("no project root found above %s", absPath)
	}
	project := &Project{
		RootPath: rootPath,
		Type:     projectType,
		Name:     extractProjectName(ctx, rootPath, projectType),
	}
	return project, nil
}

// findProjectRoot searches up from the start directory for project markers.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, projectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func projectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "package.json":
		return "javascript"
	case "pom.xml":
		return "java"
	default:
		return "git"
	}
}

func extractProjectName(ctx context.Context, rootPath, kind string) string {
	switch kind {
	case "go":
		return goModuleName(ctx, filepath.Join(rootPath, "go.mod"))
	case "javascript":
		return jsPackageName(filepath.Join(rootPath, "package.json"))
	case "java":
		return mavenArtifactID(filepath.Join(rootPath, "pom.xml"))
	}
	return filepath.Base(rootPath)
}

func goModuleName(ctx context.Context, goModPath string) string {
	fs := afs.New()
	content, _ := fs.DownloadWithURL(ctx, goModPath)
	if len(content) > 0 {
		if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil && mod.Module != nil {
			return mod.Module.Mod.Path
		}
	}
	return filepath.Base(filepath.Dir(goModPath))
}

func jsPackageName(packageJSONPath string) string {
	data, err := os.ReadFile(packageJSONPath)
	if err != nil {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	nameRegex := regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)
	matches := nameRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	return string(matches[1])
}

func mavenArtifactID(pomPath string) string {
	data, err := os.ReadFile(pomPath)
	if err != nil {
		return filepath.Base(filepath.Dir(pomPath))
	}
	artifactIDRegex := regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	matches := artifactIDRegex.FindSubmatch(data)
	if len(matches) < 2 {
		return filepath.Base(filepath.Dir(pomPath))
	}
	return string(matches[1])
}
