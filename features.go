package cproject

import (
	"sort"
)

// Features is the classifier feature bundle of one document.
type Features struct {
	ID       []string     `json:"ID"`
	Title    []string     `json:"title"`
	Authors  []string     `json:"authors"`
	Journal  []string     `json:"journal"`
	Keywords []string     `json:"keywords"`
	Binomial []*FactCount `json:"binomial"`
}

// FactCount is one fact value with its occurrence count.
type FactCount struct {
	Exact *string `json:"exact"`
	Count *int    `json:"count"`
}

// Features assembles the classifier features of this ctree: identity and
// bibliographic metadata plus the five most frequent species/binomial matches.
func (r *CTree) Features() *Features {
	metadata := r.Metadata()

	features := &Features{
		ID:       []string{*r.ID},
		Title:    []string{},
		Authors:  metadata.Authors,
		Journal:  []string{},
		Keywords: metadata.Keywords,
		Binomial: r.TopFacts("species", "binomial", 5),
	}

	if metadata.Title != nil {
		features.Title = append(features.Title, *metadata.Title)
	}
	if metadata.Journal != nil {
		features.Journal = append(features.Journal, *metadata.Journal)
	}

	return features
}

// TopFacts counts the exact values of one result set and returns the limit
// most common, ties broken alphabetically.
func (r *CTree) TopFacts(plugin string, query string, limit int) []*FactCount {
	counter := make(map[string]int)

	if queries, ok := r.Results[plugin]; ok {
		for _, record := range queries[query] {
			if exact, ok := record.Fields["exact"]; ok && exact != "" {
				counter[exact]++
			}
		}
	}

	counts := make([]*FactCount, 0, len(counter))
	for exact, count := range counter {
		e, c := exact, count
		counts = append(counts, &FactCount{Exact: &e, Count: &c})
	}

	sort.Slice(counts, func(i, j int) bool {
		if *counts[i].Count != *counts[j].Count {
			return *counts[i].Count > *counts[j].Count
		}
		return *counts[i].Exact < *counts[j].Exact
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}

	return counts
}
