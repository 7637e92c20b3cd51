package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/phravins/uhuru/internal/cli"
	"github.com/phravins/uhuru/internal/config"
)

var rootCmd = &cobra.Command{
	Use:     "uhuru",
	Version: config.Version,
	Short:   "Your all-in-one AI platform, in the terminal",
	Long: `Uhuru brings a collection of AI tools into one place:
- Chatbot, text, image, code and music generation
- Ads and content creation
- Content analysis, NLP and cybersecurity scans
- Settings with search history and account management`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunTUI(cmd, "", false)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.uhuru.yaml)")

	rootCmd.AddCommand(cli.OpenCmd)
	rootCmd.AddCommand(cli.PagesCmd)
	rootCmd.AddCommand(cli.HistoryCmd)
	rootCmd.AddCommand(cli.AccountCmd)
	rootCmd.AddCommand(cli.StateCmd)
	rootCmd.AddCommand(cli.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
