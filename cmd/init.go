package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a docsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure docsite for your project and writes a .docsite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("\nWrote %s. Run `docsite build` to render %s into %s.\n", cfgFile, cfg.SourceDir, cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
