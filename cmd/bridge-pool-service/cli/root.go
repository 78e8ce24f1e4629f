package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName  = "config.yml"
	defaultGenesisFileName = "genesis.json"
)

var (
	cfgPath     string
	genesisPath string
	replay      bool
	rootCmd     = &cobra.Command{
		Use:   "start-server",
		Short: "Runs one side of the staked relayer bridge pool",
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := getDefaultConfigFile(homePath, defaultConfigFileName)
	defaultGenesisPath := getDefaultConfigFile(homePath, defaultGenesisFileName)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&genesisPath, "genesis", defaultGenesisPath, fmt.Sprintf("token genesis file, only read on the first start (default %s)", defaultGenesisPath))
	rootCmd.PersistentFlags().BoolVar(&replay, "replay", false, "replay unprocessable messages and exit")
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}

func GetGenesisPath() string {
	return genesisPath
}

func GetReplayFlag() bool {
	return replay
}
