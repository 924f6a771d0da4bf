package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sphinx-toolbox/sphinx-pyproject/internal/utils"
	"github.com/sphinx-toolbox/sphinx-pyproject/pkg/sphinxconfig"
	"github.com/sphinx-toolbox/sphinx-pyproject/pkg/version"
)

var (
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sphinx-pyproject [pyproject.toml]",
	Short: "Resolve Sphinx configuration from pyproject.toml",
	Long: `sphinx-pyproject resolves the effective Sphinx documentation configuration
for a project: generic metadata (name, version, description, author) from the
PEP 621 [project] table or the legacy [tool.poetry] table, merged with the
free-form options in [tool.sphinx-pyproject].

It prints the merged configuration in its resolution order, which is the same
order a conf.py using this adapter would see.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("style", "s", "pep621", "Metadata style (pep621 or poetry)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text, json, or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper so SPHINX_PYPROJECT_* env vars can override them
	_ = viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	viper.SetEnvPrefix("SPHINX_PYPROJECT")
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	path := "pyproject.toml"
	if len(args) > 0 {
		path = args[0]
	}

	style := viper.GetString("style")
	format := viper.GetString("format")

	log.WithComponent("resolver").
		WithManifest(path).
		WithStyle(style).
		Debug().
		Msg("resolving configuration")

	cfg, err := sphinxconfig.Load(path, sphinxconfig.WithStyle(sphinxconfig.Style(style)))
	if err != nil {
		return err
	}

	log.Debug().Int("entries", cfg.Len()).Msg("configuration resolved")

	return render(cmd.OutOrStdout(), cfg, format)
}

func render(w io.Writer, cfg *sphinxconfig.Config, format string) error {
	switch format {
	case "text":
		for _, key := range cfg.Keys() {
			value, _ := cfg.Lookup(key)
			fmt.Fprintf(w, "%s = %v\n", key, value)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.AsMap())
	case "yaml":
		data, err := yaml.Marshal(cfg.AsMap())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (use text, json, or yaml)", format)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
