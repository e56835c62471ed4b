package cproject

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

type CTree struct {
	ID       *string                         `json:"id"`
	Path     *string                         `json:"path"`
	Plugins  []string                        `json:"plugins"`
	Queries  map[string][]string             `json:"queries"`
	Results  map[string]map[string][]*Record `json:"results"`
	Entities map[string][]string             `json:"entities,omitempty"`
}

// NewCTree reads one ctree subdirectory of a project folder. Result sets are
// discovered under results/<plugin>/<query>/results.xml; a bare results.xml at
// the ctree root is accepted as a single unnamed result set. Returns nil when
// the directory holds neither parseable results nor document sidecars.
func NewCTree(projectFolder string, ctreeID string) (*CTree, error) {
	path := filepath.Join(projectFolder, ctreeID)

	ctree := &CTree{
		ID:       &ctreeID,
		Path:     &path,
		Plugins:  []string{},
		Queries:  make(map[string][]string),
		Results:  make(map[string]map[string][]*Record),
		Entities: make(map[string][]string),
	}

	// * track successfully parsed result files
	parsed := 0

	// * check for a bare results.xml at the ctree root
	flatPath := filepath.Join(path, "results.xml")
	if _, err := os.Stat(flatPath); err == nil {
		records, err := ReadResultsXML(flatPath)
		if err != nil {
			log.Printf("warning: failed to parse %s: %v", flatPath, err)
		} else {
			ctree.Results[""] = map[string][]*Record{"": ctree.stamp("", "", records)}
			ctree.Queries[""] = []string{""}
			parsed++
		}
	}

	// * scan the nested results/<plugin>/<query> layout
	resultsPath := filepath.Join(path, "results")
	if plugins, err := os.ReadDir(resultsPath); err == nil {
		for _, plugin := range plugins {
			if !plugin.IsDir() {
				continue
			}

			pluginName := plugin.Name()
			queries, err := os.ReadDir(filepath.Join(resultsPath, pluginName))
			if err != nil {
				log.Printf("warning: failed to read plugin directory %s: %v", pluginName, err)
				continue
			}

			ctree.Plugins = append(ctree.Plugins, pluginName)
			ctree.Queries[pluginName] = []string{}
			ctree.Results[pluginName] = make(map[string][]*Record)

			for _, query := range queries {
				if !query.IsDir() {
					continue
				}

				queryName := query.Name()
				ctree.Queries[pluginName] = append(ctree.Queries[pluginName], queryName)

				resultsFile := filepath.Join(resultsPath, pluginName, queryName, "results.xml")
				records, err := ReadResultsXML(resultsFile)
				if err != nil {
					log.Printf("warning: failed to parse %s: %v", resultsFile, err)
					ctree.Results[pluginName][queryName] = []*Record{}
					continue
				}

				ctree.Results[pluginName][queryName] = ctree.stamp(pluginName, queryName, records)
				parsed++
			}

			sort.Strings(ctree.Queries[pluginName])
		}

		sort.Strings(ctree.Plugins)
	}

	// * load the entities sidecar, absent or malformed yields an empty map
	ctree.Entities = ctree.loadEntities()

	// * skip directories with nothing recognizable
	if parsed == 0 && len(ctree.Entities) == 0 && !ctree.hasSidecar() {
		return nil, nil
	}

	return ctree, nil
}

func (r *CTree) stamp(plugin string, query string, fields []map[string]string) []*Record {
	records := make([]*Record, 0, len(fields))
	for _, f := range fields {
		records = append(records, &Record{
			CTree:  r.ID,
			Plugin: &plugin,
			Query:  &query,
			Fields: f,
		})
	}
	return records
}

func (r *CTree) loadEntities() map[string][]string {
	entities := make(map[string][]string)

	bytes, err := os.ReadFile(filepath.Join(*r.Path, "entities"))
	if err != nil {
		return entities
	}

	if err := json.Unmarshal(bytes, &entities); err != nil {
		log.Printf("warning: failed to parse entities for %s: %v", *r.ID, err)
		return make(map[string][]string)
	}

	return entities
}

func (r *CTree) hasSidecar() bool {
	for _, name := range []string{"fulltext.xml", "scholarly.html"} {
		if _, err := os.Stat(filepath.Join(*r.Path, name)); err == nil {
			return true
		}
	}
	return false
}

// Records returns all result records of this ctree in deterministic order
// (plugin, query, document order).
func (r *CTree) Records() []*Record {
	records := make([]*Record, 0)

	// * unnamed flat result set first
	if flat, ok := r.Results[""]; ok {
		records = append(records, flat[""]...)
	}

	for _, plugin := range r.Plugins {
		for _, query := range r.Queries[plugin] {
			records = append(records, r.Results[plugin][query]...)
		}
	}

	return records
}

// ShowResults returns one plugin's result sets keyed by query. The pseudo
// plugin "entities" resolves to the entities sidecar converted to records.
func (r *CTree) ShowResults(plugin string) map[string][]*Record {
	if plugin == "entities" {
		results := make(map[string][]*Record)
		for entity, values := range r.Entities {
			records := make([]*Record, 0, len(values))
			for _, value := range values {
				records = append(records, &Record{
					CTree:  r.ID,
					Plugin: &plugin,
					Query:  &entity,
					Fields: map[string]string{"exact": value},
				})
			}
			results[entity] = records
		}
		return results
	}

	return r.Results[plugin]
}

func (r *CTree) String() string {
	return fmt.Sprintf("<CTree: %s>", *r.ID)
}
