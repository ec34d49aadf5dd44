package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/symbols-mcp/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize symbols-mcp configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure the skills directory, search limits
and transport, and writes a .symbols.yml file. With --defaults the default
configuration is written without prompting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		useDefaults, _ := cmd.Flags().GetBool("defaults")
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		if !useDefaults {
			_, err := config.RunWizard(cfgFile)
			return err
		}

		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("defaults", false, "write the default config without prompting")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
