package cproject

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Record is one <result> element of a results.xml, stamped with the ctree,
// ami plugin and query type it was found under. The field set is defined by
// the producing tool, not fixed.
type Record struct {
	CTree  *string           `json:"ctree"`
	Plugin *string           `json:"plugin"`
	Query  *string           `json:"type"`
	Fields map[string]string `json:"fields"`
}

// ReadResultsXML reads a results.xml and returns the attribute map of every
// <result> element in document order.
func ReadResultsXML(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	return DecodeResults(file)
}

// DecodeResults decodes results.xml content from a reader.
func DecodeResults(reader io.Reader) ([]map[string]string, error) {
	decoder := xml.NewDecoder(reader)
	results := make([]map[string]string, 0)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode results xml: %w", err)
		}

		// * collect attributes of each result element
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "result" {
			continue
		}

		fields := make(map[string]string, len(start.Attr))
		for _, attr := range start.Attr {
			fields[attr.Name.Local] = attr.Value
		}
		results = append(results, fields)
	}

	return results, nil
}
