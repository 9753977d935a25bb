package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/theme"
	"github.com/Velesio/velesio-aiserver/internal/tui"
)

var themeClient string

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the stored theme preference",
	Long: `Without arguments prints the stored theme for a client. With light or dark
stores that theme; with toggle flips it. The terminal UI's preference is used
unless --client names a browser client id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openThemeStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx := context.Background()
		var t theme.Theme
		switch {
		case len(args) == 0:
			t, err = store.Get(ctx, themeClient)
		case args[0] == "toggle":
			t, err = store.Toggle(ctx, themeClient)
		default:
			t, err = theme.Parse(args[0])
			if err == nil {
				err = store.Set(ctx, themeClient, t)
			}
		}
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	},
}

func init() {
	themeCmd.Flags().StringVar(&themeClient, "client", tui.ClientID, "client id the preference belongs to")
	rootCmd.AddCommand(themeCmd)
}
