package dictionary

import (
	"fmt"
	"os"

	"github.com/contentmine/cproject"
	"github.com/contentmine/cproject/command/cproject/app"
)

type Command struct {
	Input  string `help:"Path of the input CSV or word-frequency XML." required:""`
	Output string `help:"Path of the output XML." required:""`
	Title  string `help:"Title of the dictionary." required:""`
	Action string `help:"Input handling." enum:"list2dict,wordfreq2dict" default:"list2dict"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	// * read terms
	var terms []string
	var err error
	switch command.Action {
	case "wordfreq2dict":
		terms, err = cproject.ReadTermsWordfreq(command.Input)
	default:
		terms, err = cproject.ReadTermsCSV(command.Input)
	}
	if err != nil {
		return err
	}

	// * build dictionary
	dictionary := cproject.NewDictionary(command.Title, terms)

	if app.Verbose {
		fmt.Printf("built dictionary %s with %d entries\n", command.Title, len(dictionary.Entries))
	}

	// * write output
	file, err := os.Create(command.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return dictionary.WriteXML(file)
}
