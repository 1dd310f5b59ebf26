package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/blockgen/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Create a configuration file with default values.

Uses the --config path if given, otherwise the default location at
$XDG_CONFIG_HOME/blockgen/config.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfigFile()

		var err error
		if path != "" {
			err = config.InitConfigToPath(path, initForce)
		} else {
			path, err = config.InitConfig(initForce)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration file created at: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}
