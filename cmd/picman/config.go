package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/picman/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML.

Save the output to ~/.picman/configs/picman.yaml or ./configs/picman.yaml
and edit it, or pass it with --config.

With --effective, print the configuration after --config and
--difficulty have been applied.

Examples:
  picman config > picman.yaml
  picman config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		exitWithError(err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		exitWithError(err)
	}
	fmt.Print(string(out))
}
