package cproject

import (
	"path/filepath"
	"testing"
)

func TestBuildNetwork(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "demo")

	// * two papers sharing one fact
	writeFile(t, filepath.Join(project, "PMC0001", "results", "species", "binomial", "results.xml"),
		`<results>
 <result exact="Aedes aegypti"/>
 <result exact="Plasmodium falciparum"/>
</results>`)
	writeFile(t, filepath.Join(project, "PMC0002", "results", "species", "binomial", "results.xml"),
		`<results>
 <result exact="Aedes aegypti"/>
</results>`)

	loaded, err := New(root, "demo")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	network := BuildNetwork(loaded, "species", "binomial")

	if len(network.Papers) != 2 {
		t.Fatalf("expected 2 papers, got %v", network.Papers)
	}
	if len(network.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %v", network.Facts)
	}

	// * PMC0001 links to both facts, PMC0002 to one
	if len(network.Edges) != 3 {
		t.Errorf("expected 3 bipartite edges, got %d", len(network.Edges))
	}

	// * the two facts share one paper
	if len(network.FactEdges) != 1 {
		t.Fatalf("expected 1 fact edge, got %d", len(network.FactEdges))
	}
	if *network.FactEdges[0].Weight != 1 {
		t.Errorf("expected weight 1, got %d", *network.FactEdges[0].Weight)
	}

	// * the two papers share one fact
	if len(network.PaperEdges) != 1 {
		t.Fatalf("expected 1 paper edge, got %d", len(network.PaperEdges))
	}
	if *network.PaperEdges[0].Weight != 1 {
		t.Errorf("expected weight 1, got %d", *network.PaperEdges[0].Weight)
	}
}

func TestBuildNetworkUsesTitles(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "demo")

	writeFile(t, filepath.Join(project, "PMC0001", "results", "species", "binomial", "results.xml"),
		`<results><result exact="Aedes aegypti"/></results>`)
	writeFile(t, filepath.Join(project, "PMC0001", "fulltext.xml"), fixtureFulltext)

	loaded, err := New(root, "demo")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	network := BuildNetwork(loaded, "species", "binomial")

	if len(network.Papers) != 1 {
		t.Fatalf("expected 1 paper, got %v", network.Papers)
	}
	if network.Papers[0] != "Morbidity Rate Prediction of Dengue Hemorrhagic Fever" {
		t.Errorf("expected the article title as paper label, got %s", network.Papers[0])
	}
}

func TestBuildNetworkMissingPlugin(t *testing.T) {
	project, err := New(newFixtureProject(t), "malaria")
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	network := BuildNetwork(project, "sequence", "dna")
	if len(network.Papers) != 0 || len(network.Edges) != 0 {
		t.Errorf("expected an empty network, got %v", network)
	}
}
