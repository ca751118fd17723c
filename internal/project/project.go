// Package project lays out a generated project directory and its docs.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	DocsDir = "docs"

	FunctionalRequirementsFile = "functional_requirements.md"
	TechnicalRequirementsFile  = "technical_requirements.md"
	ManifestFile               = "manifest.yaml"
)

// NewName returns project_<timestamp>_<8 hex chars>.
func NewName(now time.Time) string {
	return fmt.Sprintf("project_%s_%s", now.Format("20060102_150405"), uuid.New().String()[:8])
}

// Create makes <outputDir>/<name>/docs and returns the project directory.
func Create(outputDir string, now time.Time) (string, error) {
	dir := filepath.Join(outputDir, NewName(now))
	if err := os.MkdirAll(filepath.Join(dir, DocsDir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}
	return dir, nil
}

// WriteDocs stores both requirements documents under docs/.
func WriteDocs(dir, functional, technical string) error {
	if err := writeDoc(dir, FunctionalRequirementsFile, functional); err != nil {
		return err
	}
	return writeDoc(dir, TechnicalRequirementsFile, technical)
}

// WritePhaseResponse keeps the raw model response of a phase so a failed
// apply can be inspected or replayed with "codegen apply".
func WritePhaseResponse(dir string, phase int, response string) (string, error) {
	name := fmt.Sprintf("phase_%d_response.md", phase)
	if err := writeDoc(dir, name, response); err != nil {
		return "", err
	}
	return filepath.Join(dir, DocsDir, name), nil
}

func writeDoc(dir, name, content string) error {
	path := filepath.Join(dir, DocsDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Manifest records how a project was generated.
type Manifest struct {
	Provider  string          `yaml:"provider"`
	Model     string          `yaml:"model"`
	Mode      string          `yaml:"mode"`
	Input     string          `yaml:"input"`
	CreatedAt time.Time       `yaml:"created_at"`
	Phases    []PhaseManifest `yaml:"phases,omitempty"`
}

// PhaseManifest summarises one applied phase.
type PhaseManifest struct {
	Name     string `yaml:"name"`
	Commands int    `yaml:"commands"`
	Folders  int    `yaml:"folders"`
	Files    int    `yaml:"files"`
}

// WriteManifest writes docs/manifest.yaml.
func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return writeDoc(dir, ManifestFile, string(data))
}

// ReadManifest loads docs/manifest.yaml.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, DocsDir, ManifestFile))
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}
