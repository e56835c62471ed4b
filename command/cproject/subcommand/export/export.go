package export

import (
	"fmt"
	"os"

	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/command/cproject/app"
)

type Command struct {
	Raw    string `help:"Path of the raw data folder." required:""`
	Name   string `help:"Name of the CProject." required:""`
	Output string `help:"Path of the output file." required:""`
	Format string `help:"Output format." enum:"json,csv" default:"json"`
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

	if app.Verbose {
		fmt.Printf("loaded %s with %d ctrees\n", project, project.Size())
	}

	// * flatten and write
	table := project.Table()

	file, err := os.Create(command.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch command.Format {
	case "csv":
		return table.WriteCSV(file)
	default:
		return table.WriteJSON(file)
	}
}
