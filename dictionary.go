package cproject

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary is an ami-dictionary: a titled, sorted term list serialized as
// <dictionary title="..."><entry term="..." name="..."/></dictionary>.
type Dictionary struct {
	XMLName xml.Name           `xml:"dictionary"`
	Title   string             `xml:"title,attr"`
	Entries []*DictionaryEntry `xml:"entry"`
}

type DictionaryEntry struct {
	Term string `xml:"term,attr"`
	Name string `xml:"name,attr"`
}

// NewDictionary builds a dictionary from a raw term list. Terms are
// lowercased, deduplicated and sorted.
func NewDictionary(title string, terms []string) *Dictionary {
	dictionary := &Dictionary{
		Title:   title,
		Entries: []*DictionaryEntry{},
	}

	for _, term := range CleanTerms(terms) {
		dictionary.Entries = append(dictionary.Entries, &DictionaryEntry{
			Term: term,
			Name: term,
		})
	}

	return dictionary
}

// CleanTerms lowercases, deduplicates and sorts a term list.
func CleanTerms(terms []string) []string {
	seen := make(map[string]bool)
	cleaned := make([]string, 0, len(terms))

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		cleaned = append(cleaned, term)
	}

	sort.Strings(cleaned)
	return cleaned
}

// WriteXML serializes the dictionary with an XML header and indentation.
func (r *Dictionary) WriteXML(writer io.Writer) error {
	if _, err := io.WriteString(writer, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	encoder := xml.NewEncoder(writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}

	_, err := io.WriteString(writer, "\n")
	return err
}

// ReadTermsCSV reads terms from a CSV file, joining multi-column rows with
// spaces.
func ReadTermsCSV(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var terms []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		terms = append(terms, strings.Join(row, " "))
	}

	return terms, nil
}

// ReadTermsWordfreq reads terms from a word-frequency results.xml, taking the
// text content of each <result> element.
func ReadTermsWordfreq(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordfreq file: %w", err)
	}
	defer file.Close()

	decoder := xml.NewDecoder(file)

	var terms []string
	var inResult bool
	var buffer strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode wordfreq xml: %w", err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			if typed.Name.Local == "result" {
				inResult = true
				buffer.Reset()
			}
		case xml.CharData:
			if inResult {
				buffer.Write(typed)
			}
		case xml.EndElement:
			if typed.Name.Local == "result" && inResult {
				if text := strings.TrimSpace(buffer.String()); text != "" {
					terms = append(terms, text)
				}
				inResult = false
			}
		}
	}

	return terms, nil
}
