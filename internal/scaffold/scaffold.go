package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/vueforge-dev/vueforge/internal/generator"
	"github.com/vueforge-dev/vueforge/internal/manifest"
)

//go:embed all:templates
var templateFS embed.FS

// templatesRoot is the embedded directory holding the project overlay.
const templatesRoot = "templates/project"

// ProjectData holds all template variables available to project templates.
type ProjectData struct {
	Name            string   // e.g., "my-app"
	Version         string   // Project version written to the manifest
	CLIVersion      string   // vueforge version for the created_by field
	PackageManager  string   // "npm", "pnpm", or "yarn"
	Dependencies    []string // Runtime packages installed on top of the generator
	DevDependencies []string // Dev packages
	Year            int      // Current year
}

// Result holds the outcome of a template overlay.
type Result struct {
	OutputDir string
	Files     []string // Files written, relative to OutputDir
	Skipped   []string // Files left alone because they already existed
	Warnings  []string
}

// NewProjectData creates a ProjectData with derived fields populated.
func NewProjectData(name, cliVersion, packageManager string) *ProjectData {
	return &ProjectData{
		Name:            name,
		Version:         "0.1.0",
		CLIVersion:      cliVersion,
		PackageManager:  packageManager,
		Dependencies:    generator.RuntimePackages,
		DevDependencies: generator.DevPackages,
		Year:            time.Now().Year(),
	}
}

// Generate renders the embedded template tree into outputDir. Files ending
// in .tmpl are executed as Go templates against data; everything else is
// copied verbatim. Existing files are skipped, never overwritten: the
// external generator owns whatever it wrote first.
func Generate(data *ProjectData, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	err := fs.WalkDir(templateFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, templatesRoot+"/")
		outRel := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))

		if _, statErr := os.Stat(outPath); statErr == nil {
			result.Skipped = append(result.Skipped, outRel)
			return nil
		}

		raw, err := fs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		content := raw
		if strings.HasSuffix(rel, ".tmpl") {
			tmpl, err := template.New(path.Base(p)).Parse(string(raw))
			if err != nil {
				return fmt.Errorf("parsing template %s: %w", rel, err)
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				return fmt.Errorf("executing template %s: %w", rel, err)
			}
			content = buf.Bytes()
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outRel, err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outRel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Validate the written manifest against the JSON schema.
	manifestFile := filepath.Join(outputDir, manifest.FileName)
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
