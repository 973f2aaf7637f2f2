package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/tasklist/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	app := tui.New(ctx, env.session, env.cfg, env.logger)
	app.WatchConfig(viper.GetViper())
	return app.Run()
}
