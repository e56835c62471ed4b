package cproject

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const binomialResults = `<?xml version="1.0" encoding="UTF-8"?>
<results title="binomial">
 <result pre="the mosquito " exact="Aedes aegypti" post=" transmits dengue"/>
 <result pre="and " exact="Aedes aegypti" post=" again"/>
 <result pre="the parasite " exact="Plasmodium falciparum" post=" causes malaria"/>
</results>
`

const humanResults = `<?xml version="1.0" encoding="UTF-8"?>
<results title="human">
 <result exact="TP53" count="2"/>
</results>
`

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}
}

// newFixtureProject builds a project folder with two nested-layout ctrees, one
// flat-layout ctree, one malformed ctree and one empty directory.
func newFixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	project := filepath.Join(root, "malaria")

	writeFile(t, filepath.Join(project, "PMC0001", "results", "species", "binomial", "results.xml"), binomialResults)
	writeFile(t, filepath.Join(project, "PMC0001", "results", "gene", "human", "results.xml"), humanResults)
	writeFile(t, filepath.Join(project, "PMC0002", "results", "species", "binomial", "results.xml"), binomialResults)
	writeFile(t, filepath.Join(project, "PMC0003", "results.xml"), humanResults)
	writeFile(t, filepath.Join(project, "PMC0004", "results", "species", "binomial", "results.xml"), "<results><result broken")

	if err := os.MkdirAll(filepath.Join(project, "PMC0005"), 0o755); err != nil {
		t.Fatalf("failed to create empty ctree: %v", err)
	}

	return root
}

func TestNewProjectMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nowhere"), "malaria")
	if err == nil {
		t.Fatal("expected an error for a missing project folder")
	}
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestNewProjectOnFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "malaria"), "not a directory")

	_, err := New(root, "malaria")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestNewProjectEmpty(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("failed to create project folder: %v", err)
	}

	project, err := New(root, "empty")
	if err != nil {
		t.Fatalf("failed to load empty project: %v", err)
	}

	if project.Size() != 0 {
		t.Errorf("expected zero ctrees, got %d", project.Size())
	}

	if rows := len(project.Table().Rows); rows != 0 {
		t.Errorf("expected zero table rows, got %d", rows)
	}
}

func TestLoadProject(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	// * malformed and empty ctrees are skipped
	if project.Size() != 3 {
		t.Fatalf("expected 3 ctrees, got %d", project.Size())
	}

	for _, skipped := range []string{"PMC0004", "PMC0005"} {
		if project.CTree(skipped) != nil {
			t.Errorf("expected %s to be skipped", skipped)
		}
	}

	ctree := project.CTree("PMC0001")
	if ctree == nil {
		t.Fatal("PMC0001 should be loaded")
	}

	if len(ctree.Plugins) != 2 || ctree.Plugins[0] != "gene" || ctree.Plugins[1] != "species" {
		t.Errorf("unexpected plugins: %v", ctree.Plugins)
	}

	if queries := ctree.Queries["species"]; len(queries) != 1 || queries[0] != "binomial" {
		t.Errorf("unexpected species queries: %v", queries)
	}

	if records := ctree.Results["species"]["binomial"]; len(records) != 3 {
		t.Errorf("expected 3 binomial records, got %d", len(records))
	}
}

func TestProjectResults(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	// * 3+1 from PMC0001, 3 from PMC0002, 1 flat from PMC0003
	records := project.Results()
	if len(records) != 8 {
		t.Fatalf("expected 8 records, got %d", len(records))
	}

	// * records carry their ctree, plugin and query
	first := records[0]
	if *first.CTree != "PMC0001" {
		t.Errorf("expected ctree PMC0001, got %s", *first.CTree)
	}
	if *first.Plugin != "gene" || *first.Query != "human" {
		t.Errorf("unexpected stamp: %s/%s", *first.Plugin, *first.Query)
	}
	if first.Fields["exact"] != "TP53" {
		t.Errorf("unexpected exact value: %s", first.Fields["exact"])
	}

	// * flat layout records carry empty plugin and query
	var flat *Record
	for _, record := range records {
		if *record.CTree == "PMC0003" {
			flat = record
			break
		}
	}
	if flat == nil {
		t.Fatal("expected a record from the flat-layout ctree")
	}
	if *flat.Plugin != "" || *flat.Query != "" {
		t.Errorf("expected empty stamp for flat layout, got %s/%s", *flat.Plugin, *flat.Query)
	}
}

func TestCTreeEntities(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "demo")
	writeFile(t, filepath.Join(project, "PMC0009", "entities"), `{"PERSON": ["Ada Lovelace"], "LOCATION": []}`)

	loaded, err := New(root, "demo")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	ctree := loaded.CTree("PMC0009")
	if ctree == nil {
		t.Fatal("ctree with entities sidecar should be loaded")
	}

	results := ctree.ShowResults("entities")
	persons := results["PERSON"]
	if len(persons) != 1 || persons[0].Fields["exact"] != "Ada Lovelace" {
		t.Errorf("unexpected entities results: %v", persons)
	}
}

func TestExportJSON(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	output := filepath.Join(t.TempDir(), "dump.json")
	if err := project.ExportJSON(output); err != nil {
		t.Fatalf("failed to export json: %v", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty output file")
	}
}
