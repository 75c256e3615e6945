package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flashbar-dev/flashbar/internal/config"
	"github.com/flashbar-dev/flashbar/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default flashbar.json",
		Long: `Write a default flashbar.json to the current directory.

Edit the file to change the listen address, auto-hide delay, anchor
corner, and metrics settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing flashbar.json")

	return cmd
}

func runInit(force bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	path := filepath.Join(wd, config.ConfigFileName)
	if config.Exists(wd) && !force {
		return errors.New(errors.CategoryCLI, config.ConfigFileName+" already exists").
			WithSuggestion("Pass --force to overwrite it")
	}

	cfg := config.New()
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success("wrote %s", config.ConfigFileName)
	info("run 'flashbar serve' to start the server")
	return nil
}
