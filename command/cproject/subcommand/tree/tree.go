package tree

import (
	"fmt"
	"os"

	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/command/cproject/app"
	"github.com/ddddddO/gtree"
)

type Command struct {
	Raw  string `help:"Path of the raw data folder." required:""`
	Name string `help:"Name of the CProject." required:""`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	// * load project
	project, err := cproject.New(command.Raw, command.Name)
	if err != nil {
		return err
	}

	// * build tree: project / ctree / plugin / query (count)
	root := gtree.NewRoot(*project.Name)
	for _, ctreeID := range project.Order {
		ctree := project.CTrees[ctreeID]
		node := root.Add(ctreeID)

		if flat, ok := ctree.Results[""]; ok {
			node.Add(fmt.Sprintf("results.xml (%d results)", len(flat[""])))
		}

		for _, plugin := range ctree.Plugins {
			pluginNode := node.Add(plugin)
			for _, query := range ctree.Queries[plugin] {
				pluginNode.Add(fmt.Sprintf("%s (%d results)", query, len(ctree.Results[plugin][query])))
			}
		}
	}

	return gtree.OutputProgrammably(os.Stdout, root)
}
