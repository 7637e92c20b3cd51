// Package cli holds the uhuru subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phravins/uhuru/internal/config"
	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/history"
	"github.com/phravins/uhuru/internal/logging"
	"github.com/phravins/uhuru/internal/notice"
	"github.com/phravins/uhuru/internal/settings"
	"github.com/phravins/uhuru/internal/tui"
)

// Prompts are variables so tests can answer them.
var (
	confirmPrompt = func(label string) (bool, error) {
		p := promptui.Prompt{Label: label, IsConfirm: true}
		if _, err := p.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}

	phrasePrompt = func(label string) (string, error) {
		p := promptui.Prompt{Label: label}
		return p.Run()
	}
)

// printer shows notices on the command output.
type printer struct {
	out io.Writer
}

func (p printer) Show(text string) { fmt.Fprintln(p.out, "✓ "+text) }

func configPath(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return ""
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// RunTUI starts the interactive dashboard, or page when it is not empty.
func RunTUI(cmd *cobra.Command, page string, standalone bool) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := tui.NewApp(cfg, logger)
	if err != nil {
		return err
	}
	if standalone && page != "" {
		return app.RunPage(page)
	}
	return app.Run(page)
}

func resolvePage(query string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(query), tui.SettingsPageID) {
		return tui.SettingsPageID, nil
	}
	catalog, err := demo.Load()
	if err != nil {
		return "", err
	}
	p, err := catalog.Match(query)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

var OpenCmd = &cobra.Command{
	Use:   "open [page]",
	Short: "Open a tool page",
	Long:  "Open a tool page by id or a loose name (\"codegen\", \"nlp\"). Use 'uhuru pages' to list them.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolvePage(args[0])
		if err != nil {
			return err
		}
		standalone, _ := cmd.Flags().GetBool("standalone")
		return RunTUI(cmd, id, standalone)
	},
}

var PagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List tool pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := demo.Load()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, p := range catalog.Pages {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, p.Description)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", tui.SettingsPageID, "Settings", "Preferences, account, search history and privacy")
		return w.Flush()
	},
}

// newSettings builds the settings state with notices going to the command output.
func newSettings(cmd *cobra.Command) (*settings.Settings, *notice.Bus, error) {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return nil, nil, err
	}
	bus := notice.NewBus(
		notice.WithDuration(cfg.NoticeDuration),
		notice.WithLogger(logger.Named("notice")),
	)
	s, err := settings.New(cfg, history.EmbeddedProvider(), bus, logger.Named("settings"))
	if err != nil {
		return nil, nil, err
	}
	return s, bus, nil
}

func printEntries(out io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No search history")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQUERY\tTOOL\tWHEN")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Query, e.Tool, e.Timestamp)
	}
	return w.Flush()
}

func newHistoryStore(cmd *cobra.Command) (*history.Store, error) {
	_, logger, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	return history.NewStore(history.EmbeddedProvider(), printer{out: cmd.OutOrStdout()}, logger.Named("history"))
}

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Search history",
	Long:  "Inspect the search history. Changes last for the current command only.",
}

var historyListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List searches, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newHistoryStore(cmd)
		if err != nil {
			return err
		}
		entries := store.Entries()
		if len(args) == 1 {
			entries = store.Find(args[0])
		}
		return printEntries(cmd.OutOrStdout(), entries)
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		store, err := newHistoryStore(cmd)
		if err != nil {
			return err
		}
		if !store.RemoveByID(id) {
			fmt.Fprintf(cmd.OutOrStdout(), "No search with id %d\n", id)
		}
		return printEntries(cmd.OutOrStdout(), store.Entries())
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newHistoryStore(cmd)
		if err != nil {
			return err
		}

		g := store.ClearGate()
		g.Open()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			yes, err = confirmPrompt("Clear all search history? This action cannot be undone")
			if err != nil {
				_ = g.Cancel()
				return err
			}
		}
		if !yes {
			_ = g.Cancel()
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
		return g.Confirm()
	},
}

var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account actions",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Request account deletion",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, bus, err := newSettings(cmd)
		if err != nil {
			return err
		}
		defer bus.Clear()

		g := s.DeletionGate()
		g.Open()

		phrase, _ := cmd.Flags().GetString("confirm")
		if !cmd.Flags().Changed("confirm") {
			phrase, err = phrasePrompt(fmt.Sprintf("Type %s to permanently delete your account", g.Phrase()))
			if err != nil {
				_ = g.Cancel()
				return err
			}
		}

		if err := g.Type(phrase); err != nil {
			return err
		}
		if err := g.Confirm(); err != nil {
			_ = g.Cancel()
			if errors.Is(err, gate.ErrInvalidConfirmation) {
				return fmt.Errorf("account not deleted: %w", err)
			}
			return err
		}

		if n, ok := bus.Active(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ "+n.Text)
		}
		return nil
	},
}

var StateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the settings state as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := newSettings(cmd)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s.Snapshot())
	},
}

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(configPath(cmd)); err != nil {
			return err
		}
		path := configPath(cmd)
		if err := config.Write(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		if path == "" {
			path = "~/.uhuru.yaml"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath(cmd))
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "config file\t%s\n", orNone(config.Path()))
		fmt.Fprintf(w, "notice_duration\t%s\n", cfg.NoticeDuration)
		fmt.Fprintf(w, "confirm_phrase\t%s\n", cfg.ConfirmPhrase)
		fmt.Fprintf(w, "dark_mode\t%t\n", cfg.DarkMode)
		fmt.Fprintf(w, "language\t%s\n", cfg.Language)
		fmt.Fprintf(w, "user_name\t%s\n", cfg.UserName)
		fmt.Fprintf(w, "user_email\t%s\n", cfg.UserEmail)
		fmt.Fprintf(w, "log.level\t%s\n", cfg.Log.Level)
		fmt.Fprintf(w, "log.file\t%s\n", orNone(cfg.Log.File))
		return w.Flush()
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	OpenCmd.Flags().Bool("standalone", false, "quit when leaving the page instead of returning to the dashboard")

	historyClearCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	HistoryCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd)

	accountDeleteCmd.Flags().String("confirm", "", "confirmation phrase, instead of prompting")
	AccountCmd.AddCommand(accountDeleteCmd)

	ConfigCmd.AddCommand(configInitCmd, configShowCmd)
}
