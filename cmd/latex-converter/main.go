// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the latex-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/latex-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the latex-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "latex-converter",
	Short: "Convert LaTeX display math from \\[ \\] to $$ $$",
	Long: `latex-converter rewrites LaTeX display-math delimiters from bracket
notation (\[ ... \]) to dollar notation ($$ ... $$).

Every \[ and every \] becomes $$. Delimiters are replaced literally and
independently: pairing, nesting, and balance are never checked, and
existing $$ is left alone.

Text can come from stdin, files, or directories. Use preview to see the
delimiters highlighted, example to try the built-in sample, and watch to
keep a converted copy in sync while you edit.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./latex-converter.yaml or ~/.config/latex-converter/config.yaml)")
	rootCmd.PersistentFlags().String("color", "auto", "highlight delimiters in previews: auto, always, or never")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("latex-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "latex-converter"))
		}
	}

	// Defaults register the keys so AutomaticEnv can override them.
	viper.SetDefault("output_dir", "")
	viper.SetDefault("extensions", types.DefaultExtensions)
	viper.SetDefault("clipboard_command", "")
	viper.SetDefault("samples_dir", "samples")
	viper.SetDefault("watch_settle", types.DefaultWatchSettle)

	viper.SetEnvPrefix("LATEX_CONVERTER")
	viper.AutomaticEnv()
	_ = viper.BindEnv("color")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
