package cproject

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Scholarly wraps the parsed scholarly.html of a ctree.
type Scholarly struct {
	Root *html.Node
}

// Scholarly parses the scholarly.html sidecar of this ctree.
func (r *CTree) Scholarly() (*Scholarly, error) {
	file, err := os.Open(filepath.Join(*r.Path, "scholarly.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to open scholarly html: %w", err)
	}
	defer file.Close()

	root, err := html.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scholarly html: %w", err)
	}

	return &Scholarly{Root: root}, nil
}

// Authors collects the citation_author spans inside contrib-group divs.
func (r *Scholarly) Authors() []string {
	var authors []string

	for _, group := range findAll(r.Root, "div", "class", "contrib-group") {
		for _, author := range findAll(group, "span", "class", "citation_author") {
			if text := nodeText(author); text != "" {
				authors = append(authors, text)
			}
		}
	}

	return authors
}

// Abstract joins the paragraph text of divs tagged as abstract.
func (r *Scholarly) Abstract() string {
	var parts []string

	for _, div := range findAll(r.Root, "div", "tag", "abstract") {
		for _, p := range findAll(div, "p", "", "") {
			if text := nodeText(p); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return collapse(strings.Join(parts, " "))
}

// Section returns the text following a heading whose text equals title, e.g.
// "Acknowledgements".
func (r *Scholarly) Section(title string) string {
	var parts []string

	walk(r.Root, func(node *html.Node) {
		if node.Type != html.ElementNode {
			return
		}
		if collapse(nodeText(node)) != title {
			return
		}

		// * collect the text of the heading's following siblings
		for sibling := node.NextSibling; sibling != nil; sibling = sibling.NextSibling {
			if text := nodeText(sibling); text != "" {
				parts = append(parts, text)
			}
		}
	})

	return collapse(strings.Join(parts, " "))
}

// Acknowledgements returns the Acknowledgements section text.
func (r *Scholarly) Acknowledgements() string {
	return r.Section("Acknowledgements")
}

// CompetingInterests returns the text following a bold "Competing interests"
// lead-in.
func (r *Scholarly) CompetingInterests() string {
	var parts []string

	walk(r.Root, func(node *html.Node) {
		if node.Type != html.ElementNode || node.Data != "b" {
			return
		}
		if !strings.Contains(nodeText(node), "Competing interests") {
			return
		}

		for sibling := node.NextSibling; sibling != nil; sibling = sibling.NextSibling {
			if text := nodeText(sibling); text != "" {
				parts = append(parts, text)
				break
			}
		}
	})

	return collapse(strings.Join(parts, " "))
}

func walk(node *html.Node, visit func(*html.Node)) {
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// findAll returns element nodes named tag whose attribute attr contains value.
// Empty attr matches every node of that tag.
func findAll(root *html.Node, tag string, attr string, value string) []*html.Node {
	var nodes []*html.Node

	walk(root, func(node *html.Node) {
		if node.Type != html.ElementNode || node.Data != tag {
			return
		}
		if attr == "" {
			nodes = append(nodes, node)
			return
		}
		for _, a := range node.Attr {
			if a.Key == attr && strings.Contains(a.Val, value) {
				nodes = append(nodes, node)
				return
			}
		}
	})

	return nodes
}

func nodeText(node *html.Node) string {
	var buffer strings.Builder

	walk(node, func(n *html.Node) {
		if n.Type == html.TextNode {
			buffer.WriteString(n.Data)
		}
	})

	return collapse(buffer.String())
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
