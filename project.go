package cproject

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// ErrProjectNotFound reports a project folder that does not exist or is not a directory.
var ErrProjectNotFound = errors.New("project folder not found")

type Project struct {
	Path   *string           `json:"path"`
	Name   *string           `json:"name"`
	CTrees map[string]*CTree `json:"ctrees"`
	Order  []string          `json:"order"`
}

// New maps a CProject file structure to a data object. The project folder is
// <rootPath>/<projectName>; every immediate subdirectory becomes a CTree.
// Subdirectories carrying neither parseable results nor document sidecars are
// skipped with a warning.
func New(rootPath string, projectName string) (*Project, error) {
	if rootPath == "" {
		return nil, fmt.Errorf("project root path cannot be empty")
	}

	if projectName == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}

	// * construct project folder path
	projectFolder := filepath.Join(rootPath, projectName)

	// * validate that the path exists and is a directory
	info, err := os.Stat(projectFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectFolder)
		}
		return nil, fmt.Errorf("failed to access project folder %s: %w", projectFolder, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrProjectNotFound, projectFolder)
	}

	// * create project struct
	project := &Project{
		Path:   &projectFolder,
		Name:   &projectName,
		CTrees: make(map[string]*CTree),
		Order:  []string{},
	}

	// * read directory contents and load ctrees
	entries, err := os.ReadDir(projectFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read project folder: %w", err)
	}

	for _, entry := range entries {
		// * skip non-directory entries
		if !entry.IsDir() {
			continue
		}

		ctree, err := NewCTree(projectFolder, entry.Name())
		if err != nil {
			log.Printf("warning: failed to load ctree %s: %v", entry.Name(), err)
			continue
		}

		if ctree == nil {
			continue
		}

		project.CTrees[entry.Name()] = ctree
		project.Order = append(project.Order, entry.Name())
	}

	sort.Strings(project.Order)

	return project, nil
}

// Size returns the number of loaded ctrees.
func (r *Project) Size() int {
	return len(r.CTrees)
}

// CTree returns a loaded ctree by its ID, or nil.
func (r *Project) CTree(ctreeID string) *CTree {
	return r.CTrees[ctreeID]
}

// Results flattens all loaded result sets into a single record slice. Each
// record carries its ctree ID, ami plugin name and query type, in deterministic
// order (ctree, plugin, query).
func (r *Project) Results() []*Record {
	records := make([]*Record, 0)
	for _, ctreeID := range r.Order {
		records = append(records, r.CTrees[ctreeID].Records()...)
	}
	return records
}

// ExportJSON serializes the flattened table to a JSON document at outputPath,
// one entry per record.
func (r *Project) ExportJSON(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := r.Table().WriteJSON(file); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

func (r *Project) String() string {
	return fmt.Sprintf("<CProject: %s>", *r.Name)
}
