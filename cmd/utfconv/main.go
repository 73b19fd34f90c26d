package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/oy3o/utfconv/internal/command"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func main() {
	root := command.GetRootCommand(afero.NewOsFs(), command.BuildInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	})
	err := root.Execute()
	_ = command.Logger().Sync()
	if err != nil {
		os.Exit(1)
	}
}
