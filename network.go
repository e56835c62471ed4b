package cproject

import (
	"sort"
)

// Network is the bipartite graph between papers and the facts one result set
// found in them, plus the weighted monopartite projections. The paper label is
// the article title when fulltext.xml provides one, else the ctree ID.
type Network struct {
	Plugin     *string         `json:"plugin"`
	Query      *string         `json:"query"`
	Papers     []string        `json:"papers"`
	Facts      []string        `json:"facts"`
	Edges      []*Edge         `json:"edges"`
	FactEdges  []*WeightedEdge `json:"factEdges"`
	PaperEdges []*WeightedEdge `json:"paperEdges"`
}

type Edge struct {
	Paper *string `json:"paper"`
	Fact  *string `json:"fact"`
}

type WeightedEdge struct {
	Source *string `json:"source"`
	Target *string `json:"target"`
	Weight *int    `json:"weight"`
}

// BuildNetwork links papers to the exact fact values of one plugin/query
// result set across the whole project.
func BuildNetwork(project *Project, plugin string, query string) *Network {
	network := &Network{
		Plugin:     &plugin,
		Query:      &query,
		Papers:     []string{},
		Facts:      []string{},
		Edges:      []*Edge{},
		FactEdges:  []*WeightedEdge{},
		PaperEdges: []*WeightedEdge{},
	}

	// * paper -> fact set, fact -> paper set
	paperFacts := make(map[string]map[string]bool)
	factPapers := make(map[string]map[string]bool)

	for _, ctreeID := range project.Order {
		ctree := project.CTrees[ctreeID]

		queries, ok := ctree.Results[plugin]
		if !ok {
			continue
		}

		records := queries[query]
		if len(records) == 0 {
			continue
		}

		// * label the paper by title when available
		paper := ctreeID
		if title, err := ctree.Title(); err == nil && title != "" {
			paper = title
		}

		for _, record := range records {
			exact, ok := record.Fields["exact"]
			if !ok || exact == "" {
				continue
			}

			if paperFacts[paper] == nil {
				paperFacts[paper] = make(map[string]bool)
			}
			if factPapers[exact] == nil {
				factPapers[exact] = make(map[string]bool)
			}
			paperFacts[paper][exact] = true
			factPapers[exact][paper] = true
		}
	}

	network.Papers = sortedKeys(paperFacts)
	network.Facts = sortedKeys(factPapers)

	// * bipartite edges
	for _, paper := range network.Papers {
		for _, fact := range sortedKeys(paperFacts[paper]) {
			p, f := paper, fact
			network.Edges = append(network.Edges, &Edge{Paper: &p, Fact: &f})
		}
	}

	// * weighted projections: shared-neighbor counts
	network.FactEdges = project2(network.Facts, factPapers)
	network.PaperEdges = project2(network.Papers, paperFacts)

	return network
}

// project2 builds the weighted monopartite projection of a bipartite side:
// two nodes are linked with the number of neighbors they share.
func project2(nodes []string, neighbors map[string]map[string]bool) []*WeightedEdge {
	edges := []*WeightedEdge{}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			weight := 0
			for neighbor := range neighbors[nodes[i]] {
				if neighbors[nodes[j]][neighbor] {
					weight++
				}
			}
			if weight == 0 {
				continue
			}

			source, target, w := nodes[i], nodes[j], weight
			edges = append(edges, &WeightedEdge{
				Source: &source,
				Target: &target,
				Weight: &w,
			})
		}
	}

	return edges
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
