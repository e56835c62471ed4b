package cproject

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanTerms(t *testing.T) {
	cleaned := CleanTerms([]string{"Zika", "dengue", "ZIKA", "  malaria ", ""})

	expected := []string{"dengue", "malaria", "zika"}
	if len(cleaned) != len(expected) {
		t.Fatalf("expected %d terms, got %d", len(expected), len(cleaned))
	}
	for i, term := range expected {
		if cleaned[i] != term {
			t.Errorf("expected term %s at %d, got %s", term, i, cleaned[i])
		}
	}
}

func TestDictionaryWriteXML(t *testing.T) {
	dictionary := NewDictionary("diseases", []string{"Dengue", "Malaria"})

	var buffer bytes.Buffer
	if err := dictionary.WriteXML(&buffer); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}

	output := buffer.String()
	if !strings.Contains(output, `<dictionary title="diseases">`) {
		t.Errorf("missing dictionary element: %s", output)
	}
	if !strings.Contains(output, `<entry term="dengue" name="dengue">`) &&
		!strings.Contains(output, `<entry term="dengue" name="dengue"/>`) {
		t.Errorf("missing dengue entry: %s", output)
	}
}

func TestReadTermsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.csv")
	writeFile(t, path, "Aedes,aegypti\ndengue\n")

	terms, err := ReadTermsCSV(path)
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}

	if len(terms) != 2 || terms[0] != "Aedes aegypti" || terms[1] != "dengue" {
		t.Errorf("unexpected terms: %v", terms)
	}
}

func TestReadTermsWordfreq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xml")
	writeFile(t, path, `<?xml version="1.0"?>
<results title="frequencies">
 <result>dengue</result>
 <result>mosquito</result>
 <result></result>
</results>
`)

	terms, err := ReadTermsWordfreq(path)
	if err != nil {
		t.Fatalf("failed to read wordfreq: %v", err)
	}

	if len(terms) != 2 || terms[0] != "dengue" || terms[1] != "mosquito" {
		t.Errorf("unexpected terms: %v", terms)
	}
}
