package main

import (
	"github.com/alecthomas/kong"
	"github.com/contentmine/cproject/command/cproject/app"
	"github.com/contentmine/cproject/command/cproject/subcommand/dictionary"
	"github.com/contentmine/cproject/command/cproject/subcommand/elasticdump"
	"github.com/contentmine/cproject/command/cproject/subcommand/export"
	"github.com/contentmine/cproject/command/cproject/subcommand/serve"
	"github.com/contentmine/cproject/command/cproject/subcommand/tree"
	"github.com/lithammer/dedent"
)

type Command struct {
	Verbose     bool                 `help:"Enable verbose output." short:"v"`
	Export      *export.Command      `cmd:"export" help:"Flatten a CProject into a JSON or CSV table."`
	Elasticdump *elasticdump.Command `cmd:"elasticdump" help:"Convert a CProject to elasticsearch-dump facts and metadata."`
	Dictionary  *dictionary.Command  `cmd:"dictionary" help:"Build an ami-dictionary XML from a term list."`
	Tree        *tree.Command        `cmd:"tree" help:"Print the structure of a CProject."`
	Serve       *serve.Command       `cmd:"serve" help:"Serve a CProject over HTTP."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("cproject"),
		kong.Description(dedent.Dedent(`
			CProject Command Line Interface

			Reads ContentMine CProject directory structures into data objects
			and converts them to tables, dumps and dictionaries.`)),
	)
	err := ctx.Run(&app.App{
		Verbose: command.Verbose,
	})
	ctx.FatalIfErrorf(err)
}
