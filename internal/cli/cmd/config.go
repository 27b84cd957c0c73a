package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accessible-ui/tabs/internal/cli/styles"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, print the config file path, or emit its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the config JSON schema",
	Long: `Print the JSON schema of the config file.

With --write the schema is saved as config.schema.json next to the config
file, where TOML language servers can pick it up.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the schema next to the config file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfig(app.ConfigManager.ConfigFile(), app.Config))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.ConfigFile())
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !schemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			return fmt.Errorf("resolve config directory: %w", err)
		}
	}
	path, err := config.GenerateSchemaFile(dir)
	if err != nil {
		renderer := styles.NewConfigRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
	return nil
}
