package commands

import (
	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(globals *Global, root *CLI) error {
	root.logger.Debug("Initializing configuration", logfields.Path(root.Config), "force", i.Force)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	printf(globals.Stdout, "Wrote example configuration to %s\n", root.Config)
	return nil
}
