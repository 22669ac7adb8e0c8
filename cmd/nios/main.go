package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridpoint-io/nios/cmd/nios/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nios",
	Short: "Infoblox NIOS WAPI CLI",
	Long: `A command-line interface for the Infoblox NIOS web API (WAPI).

Issues generic object operations (get, create, update, delete, and
function calls) against a NIOS appliance and renders the replies as
tables, JSON, or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.nios/config.yml)")
	rootCmd.PersistentFlags().StringP("host", "H", "", "appliance host name or address")
	rootCmd.PersistentFlags().StringP("username", "u", "", "WAPI username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "WAPI password (prompted when omitted)")
	rootCmd.PersistentFlags().String("wapi-version", "", "WAPI version (default 1.4)")
	rootCmd.PersistentFlags().Bool("ssl-verify", false, "verify the appliance TLS certificate")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (default 10s)")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log WAPI calls to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("wapi-version", rootCmd.PersistentFlags().Lookup("wapi-version"))
	_ = viper.BindPFlag("ssl-verify", rootCmd.PersistentFlags().Lookup("ssl-verify"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewUpdateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewCallCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".nios"))
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
	}

	viper.SetEnvPrefix("NIOS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
