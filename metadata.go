package cproject

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Metadata is the document description assembled from the fulltext.xml and
// scholarly.html sidecars of a ctree. Fields stay nil when the corresponding
// sidecar or element is absent.
type Metadata struct {
	CTree              *string  `json:"ctree,omitempty"`
	Title              *string  `json:"title,omitempty"`
	Journal            *string  `json:"journal,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	Authors            []string `json:"authors,omitempty"`
	Abstract           *string  `json:"abstract,omitempty"`
	CompetingInterests *string  `json:"competingInterests,omitempty"`
}

// Metadata assembles the document metadata of this ctree, best effort: each
// sidecar contributes what it can, missing sidecars contribute nothing.
func (r *CTree) Metadata() *Metadata {
	metadata := &Metadata{
		CTree: r.ID,
	}

	// * fulltext.xml carries title, journal and keywords
	if file, err := os.Open(filepath.Join(*r.Path, "fulltext.xml")); err == nil {
		fulltext, err := DecodeFulltext(file)
		file.Close()
		if err == nil {
			metadata.Title = fulltext.Title
			metadata.Journal = fulltext.Journal
			metadata.Keywords = fulltext.Keywords
		}
	}

	// * scholarly.html carries authors, abstract and competing interests
	if scholarly, err := r.Scholarly(); err == nil {
		metadata.Authors = scholarly.Authors()
		if abstract := scholarly.Abstract(); abstract != "" {
			metadata.Abstract = &abstract
		}
		if ci := scholarly.CompetingInterests(); ci != "" {
			metadata.CompetingInterests = &ci
		}
	}

	return metadata
}

// Title returns the article title from fulltext.xml.
func (r *CTree) Title() (string, error) {
	file, err := os.Open(filepath.Join(*r.Path, "fulltext.xml"))
	if err != nil {
		return "", fmt.Errorf("failed to open fulltext: %w", err)
	}
	defer file.Close()

	fulltext, err := DecodeFulltext(file)
	if err != nil {
		return "", err
	}

	if fulltext.Title == nil {
		return "", fmt.Errorf("no article title in fulltext of %s", *r.ID)
	}

	return *fulltext.Title, nil
}

// Fulltext holds the fields extracted from a JATS fulltext.xml.
type Fulltext struct {
	Title    *string
	Journal  *string
	Keywords []string
}

// DecodeFulltext extracts article title, journal title and keywords from a
// JATS document. The first occurrence of title and journal wins; keywords
// accumulate.
func DecodeFulltext(reader io.Reader) (*Fulltext, error) {
	decoder := xml.NewDecoder(reader)
	fulltext := &Fulltext{}

	// * name of the element currently being captured
	var capturing string
	var buffer strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode fulltext xml: %w", err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			switch typed.Name.Local {
			case "article-title", "journal-title", "kwd":
				capturing = typed.Name.Local
				buffer.Reset()
			}

		case xml.CharData:
			if capturing != "" {
				buffer.Write(typed)
			}

		case xml.EndElement:
			if capturing == "" || typed.Name.Local != capturing {
				continue
			}

			text := strings.Join(strings.Fields(buffer.String()), " ")
			switch capturing {
			case "article-title":
				if fulltext.Title == nil && text != "" {
					fulltext.Title = &text
				}
			case "journal-title":
				if fulltext.Journal == nil && text != "" {
					fulltext.Journal = &text
				}
			case "kwd":
				if text != "" {
					fulltext.Keywords = append(fulltext.Keywords, text)
				}
			}
			capturing = ""
		}
	}

	return fulltext, nil
}
