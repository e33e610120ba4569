package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolves the configuration the same way "play" does and prints it as YAML.

Search order:
  1. --config path
  2. ~/.tetris/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. built-in defaults

The output is a valid config file:
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Difficulty preset to apply: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) error {
	tetris.SetConfigPath(flagShowConfig)
	tetris.SetDifficultyPreset(flagShowDifficulty)

	fc, err := tetris.LoadFileConfig()
	if err != nil {
		return err
	}
	if err := tetris.ConfigFromFile(fc).Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(fc)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
