package elasticdump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/command/cproject/app"
)

type Command struct {
	Raw    string `help:"Path of the raw data folder." required:""`
	Name   string `help:"Name of the CProject." required:""`
	Output string `help:"Path of the output folder." required:""`
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

	if err := os.MkdirAll(command.Output, 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	// * write facts
	facts, err := os.Create(filepath.Join(command.Output, "facts.json"))
	if err != nil {
		return fmt.Errorf("failed to create facts file: %w", err)
	}
	defer facts.Close()

	if err := cproject.WriteFacts(project, facts); err != nil {
		return err
	}

	// * write metadata
	metadata, err := os.Create(filepath.Join(command.Output, "metadata.json"))
	if err != nil {
		return fmt.Errorf("failed to create metadata file: %w", err)
	}
	defer metadata.Close()

	if err := cproject.WriteMetadata(project, metadata); err != nil {
		return err
	}

	if app.Verbose {
		fmt.Printf("dumped %d ctrees to %s\n", project.Size(), command.Output)
	}

	return nil
}
