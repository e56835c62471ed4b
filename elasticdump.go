package cproject

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bsthun/gut"
)

// Envelope is one elasticsearch-dump line.
type Envelope struct {
	Index  *string `json:"_index"`
	Type   *string `json:"_type"`
	Source any     `json:"_source"`
}

// FactSource is the _source payload of one fact snippet.
type FactSource struct {
	Term        *string           `json:"term"`
	Prefix      *string           `json:"prefix"`
	Post        *string           `json:"post"`
	CProjectID  *string           `json:"cprojectID"`
	Identifiers map[string]string `json:"identifiers"`
}

// WriteFacts writes the project's records as newline-delimited fact envelopes,
// skipping word-frequency records and records without an exact match.
func WriteFacts(project *Project, writer io.Writer) error {
	encoder := json.NewEncoder(writer)

	for _, record := range project.Results() {
		if *record.Query == "word" {
			continue
		}

		exact, ok := record.Fields["exact"]
		if !ok || exact == "" {
			continue
		}

		envelope := &Envelope{
			Index: gut.Ptr("facts"),
			Type:  gut.Ptr("snippet"),
			Source: &FactSource{
				Term:       &exact,
				Prefix:     gut.Ptr(record.Fields["pre"]),
				Post:       gut.Ptr(record.Fields["post"]),
				CProjectID: record.CTree,
				Identifiers: map[string]string{
					"contentmine": *record.Query,
				},
			},
		}

		if err := encoder.Encode(envelope); err != nil {
			return fmt.Errorf("failed to encode fact envelope: %w", err)
		}
	}

	return nil
}

// WriteMetadata writes one metadata envelope per loaded ctree.
func WriteMetadata(project *Project, writer io.Writer) error {
	encoder := json.NewEncoder(writer)

	for _, ctreeID := range project.Order {
		envelope := &Envelope{
			Index:  gut.Ptr("metadata"),
			Type:   gut.Ptr("eupmc"),
			Source: project.CTrees[ctreeID].Metadata(),
		}

		if err := encoder.Encode(envelope); err != nil {
			return fmt.Errorf("failed to encode metadata envelope: %w", err)
		}
	}

	return nil
}
