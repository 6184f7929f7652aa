// Package scaffold creates the files for a fresh nib project: nib.yml and
// a starter notebook.
package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dyluth/nib/internal/config"
	"github.com/dyluth/nib/pkg/notebook"
)

//go:embed templates/*
var templatesFS embed.FS

// NotebookPath is the starter notebook created by `nib init`.
const NotebookPath = "notebook.json"

// FileInfo represents a file to be created during initialization.
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize creates the nib project structure in the current directory.
// If force is true, it first removes an existing nib.yml and notebook.json.
func Initialize(force bool, cfg *config.Config) error {
	if force {
		if err := handleForce(); err != nil {
			return err
		}
	}

	files, err := projectFiles(cfg)
	if err != nil {
		return err
	}

	if err := writeFiles(files); err != nil {
		return err
	}

	return validateCreatedFiles()
}

// handleForce removes existing files if --force was specified.
func handleForce() error {
	for _, path := range []string{config.DefaultPath, NotebookPath} {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("⚠ Removing existing %s...\n", path)
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
	}
	return nil
}

// projectFiles assembles the files to create: the static nib.yml template
// and a generated starter notebook.
func projectFiles(cfg *config.Config) ([]FileInfo, error) {
	nibYml, err := templatesFS.ReadFile("templates/nib.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read nib.yml template: %w", err)
	}

	starter, err := starterNotebook(cfg)
	if err != nil {
		return nil, err
	}

	return []FileInfo{
		{Path: config.DefaultPath, Content: nibYml, Permissions: 0644},
		{Path: NotebookPath, Content: starter, Permissions: 0644},
	}, nil
}

// Starter notebook wire shapes. These mirror the decode-side format, which
// is distinct from the canonical shape Encode produces.
type starterDoc struct {
	Kernel  string        `json:"kernel"`
	Authors []string      `json:"authors,omitempty"`
	Cells   []starterCell `json:"cells"`
}

type starterCell struct {
	CellID string      `json:"cell_id"`
	Cell   starterBody `json:"cell"`
}

type starterBody struct {
	CellType string       `json:"cell_type"`
	Metadata *starterMeta `json:"metadata,omitempty"`
	Source   []string     `json:"source"`
}

type starterMeta struct {
	Tags []string `json:"tags"`
}

// starterNotebook generates the starter notebook: one markdown cell and
// one code cell. The code cell gets a fresh UUID as its id; a UUID is
// lowercase hex and hyphens, so it already satisfies the cell-id contract
// and survives re-normalization unchanged.
func starterNotebook(cfg *config.Config) ([]byte, error) {
	doc := starterDoc{
		Kernel:  cfg.Kernel,
		Authors: cfg.Authors,
		Cells: []starterCell{
			{
				CellID: "welcome",
				Cell: starterBody{
					CellType: "markdown",
					Source: []string{
						"# Welcome to nib\n",
						"This first line becomes the notebook title.\n",
					},
				},
			},
			{
				CellID: uuid.New().String(),
				Cell: starterBody{
					CellType: "code",
					Metadata: &starterMeta{Tags: []string{"example"}},
					Source:   []string{"print(\"hello, nib\")\n"},
				},
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate starter notebook: %w", err)
	}
	return append(data, '\n'), nil
}

// writeFiles writes all project files to disk.
func writeFiles(files []FileInfo) error {
	for _, file := range files {
		if err := os.WriteFile(file.Path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles checks that the created files parse with the same
// code paths the rest of the tool uses.
func validateCreatedFiles() error {
	content, err := os.ReadFile(config.DefaultPath)
	if err != nil {
		return fmt.Errorf("failed to read created %s: %w", config.DefaultPath, err)
	}
	var yamlData interface{}
	if err := yaml.Unmarshal(content, &yamlData); err != nil {
		return fmt.Errorf("created %s is not valid YAML: %w", config.DefaultPath, err)
	}

	raw, err := os.ReadFile(NotebookPath)
	if err != nil {
		return fmt.Errorf("failed to read created %s: %w", NotebookPath, err)
	}
	if _, err := notebook.Decode(string(raw)); err != nil {
		return fmt.Errorf("created %s does not decode: %w", NotebookPath, err)
	}

	return nil
}

// PrintSuccess prints the success message with created files.
func PrintSuccess() {
	fmt.Println("\n✓ Initialized nib project!")
	fmt.Println("\nCreated:")
	fmt.Printf("  ✓ %s\n", config.DefaultPath)
	fmt.Printf("  ✓ %s\n", NotebookPath)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Edit %s and add your own cells\n", NotebookPath)
	fmt.Printf("  2. Run 'nib convert %s' to produce canonical nbformat output\n", NotebookPath)
	fmt.Printf("  3. Run 'nib cells %s' to list the cells\n", NotebookPath)
}
