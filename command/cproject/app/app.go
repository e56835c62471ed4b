package app

type App struct {
	Verbose bool
}
