package openscad

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Binary is the OpenSCAD executable looked up in PATH
var Binary = "openscad"

var (
	useRegex     = regexp.MustCompile(`^\s*use\s*<([^>]+)>`)
	includeRegex = regexp.MustCompile(`^\s*include\s*<([^>]+)>`)
)

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
	}
}

// Available reports whether the OpenSCAD executable can be found
func Available() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}

func (r *Renderer) abs(scadFile string) string {
	if filepath.IsAbs(scadFile) {
		return scadFile
	}
	return filepath.Join(r.workDir, scadFile)
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if !Available() {
		return errors.Errorf("%s not found in PATH. Please install OpenSCAD from https://openscad.org/", Binary)
	}

	cmd := exec.CommandContext(ctx, Binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithFields(log.Fields{"scad": scadFile, "stl": outputFile}).Debug("rendering with openscad")
	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		if stderr.Len() > 0 {
			msg.WriteString("stderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("stdout: ")
			msg.WriteString(stdout.String())
		}
		return errors.Wrapf(err, "failed to render %s %s", scadFile, msg.String())
	}

	return nil
}

// RenderTemp renders scadFile into a temporary STL file. The caller removes
// the returned path.
func (r *Renderer) RenderTemp(ctx context.Context, scadFile string) (string, error) {
	tmp, err := os.CreateTemp("", "bbox-*.stl")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary STL")
	}
	path := tmp.Name()
	tmp.Close()

	if err := r.RenderToSTL(ctx, scadFile, path); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// ResolveDependencies finds all dependencies (use/include statements) in an OpenSCAD file
// Returns a list of absolute paths to all dependencies, the file itself first
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	if err := r.resolveDependenciesRecursive(r.abs(scadFile), visited, &deps); err != nil {
		return nil, err
	}

	return deps, nil
}

func (r *Renderer) resolveDependenciesRecursive(scadFile string, visited map[string]bool, deps *[]string) error {
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	fileDeps, err := r.parseDependencies(scadFile)
	if err != nil {
		return err
	}

	for _, dep := range fileDeps {
		if err := r.resolveDependenciesRecursive(dep, visited, deps); err != nil {
			return err
		}
	}

	return nil
}

// parseDependencies parses a single OpenSCAD file to find use/include statements
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", scadFile)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}

		for _, re := range []*regexp.Regexp{useRegex, includeRegex} {
			if matches := re.FindStringSubmatch(line); len(matches) > 1 {
				deps = append(deps, r.resolveDepPath(matches[1], scadDir))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading %s", scadFile)
	}

	return deps, nil
}

// resolveDepPath resolves a dependency path relative to the current file's directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	// ./ and ../ are always relative to the including file
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(filepath.Join(currentDir, depPath))
	}

	absPath := filepath.Join(currentDir, depPath)
	if _, err := os.Stat(absPath); err == nil {
		return filepath.Clean(absPath)
	}

	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
