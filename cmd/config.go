package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdocmd/gdocmd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show gdocmd configuration",
	Long: `Show the resolved configuration.

Examples:
  gdocmd config          # show current settings
  gdocmd config path     # print the config file path
  gdocmd config init     # write a default config file`,
	RunE: configShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	RunE:  configPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  configInit,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("credentials: %s\n", cfg.Credentials)
	fmt.Printf("token:       %s\n", cfg.Token)
	fmt.Printf("upload:\n")
	fmt.Printf("  folder: %s\n", cfg.Upload.Folder)
	fmt.Printf("  role:   %s\n", cfg.Upload.Role)
	if cfg.Upload.Prefix != "" {
		fmt.Printf("  prefix: %s\n", cfg.Upload.Prefix)
	}
	if cfg.Upload.Logo != "" {
		fmt.Printf("  logo:   %s\n", cfg.Upload.Logo)
	}
	return nil
}

func configPath(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func configInit(cmd *cobra.Command, args []string) error {
	if config.Exists() {
		path, _ := config.GetConfigPath()
		return fmt.Errorf("config already exists at %s", path)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	path, _ := config.GetConfigPath()
	fmt.Printf("Wrote %s\n", path)
	return nil
}
