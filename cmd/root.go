package cmd

import (
	"os"

	"github.com/guidopacc/insurapro/query"
	"github.com/guidopacc/insurapro/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insurapro",
	Short: "InsuraPro CRM manages customers and their interactions.",
	Long: `InsuraPro is a command-line CRM for an insurance agency.
It keeps customer records and their time-stamped interactions in two
flat text files and offers add, list, update, delete, search and
persistence operations, plus a guided interactive menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen
// once.
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.insurapro.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetStore initializes and returns the customer store configured with the
// data file paths from the application config. Initialization loads any
// existing data; a missing data set starts the store empty.
func GetStore() (store.CustomerStore, error) {
	s := store.NewFileCustomerStore()
	config := GetConfig()

	err := s.Initialize(map[string]string{
		"customerFile":    CustomerFilePath(config),
		"interactionFile": InteractionFilePath(config),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetQueryEngine returns a search engine reading live snapshots of the
// given store.
func GetQueryEngine(s store.CustomerStore) *query.Engine {
	return query.NewEngine(s.Customers)
}
