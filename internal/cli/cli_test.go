package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/uhuru/internal/demo"
	"github.com/phravins/uhuru/internal/gate"
	"github.com/phravins/uhuru/internal/settings"
)

var testRoot *cobra.Command

// Commands are package globals, so one root is shared by every test.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "uhuru-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfgPath := filepath.Join(dir, "uhuru.yaml")
	cfg := fmt.Sprintf("log:\n  level: debug\n  file: %s\n", filepath.Join(dir, "uhuru.log"))
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	testRoot = &cobra.Command{Use: "uhuru", SilenceUsage: true, SilenceErrors: true}
	testRoot.PersistentFlags().String("config", cfgPath, "config file")
	testRoot.AddCommand(PagesCmd, HistoryCmd, AccountCmd, StateCmd, ConfigCmd)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	testRoot.SetOut(&out)
	testRoot.SetErr(&out)
	testRoot.SetArgs(args)
	err := testRoot.Execute()
	return out.String(), err
}

func answerConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirmPrompt
	confirmPrompt = func(string) (bool, error) { return answer, nil }
	t.Cleanup(func() { confirmPrompt = orig })
}

func answerPhrase(t *testing.T, answer string) {
	t.Helper()
	orig := phrasePrompt
	phrasePrompt = func(string) (string, error) { return answer, nil }
	t.Cleanup(func() { phrasePrompt = orig })
}

func TestPages(t *testing.T) {
	out, err := run(t, "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "chatbot")
	assert.Contains(t, out, "Code Generator")
	assert.Contains(t, out, "settings")
}

func TestHistoryList(t *testing.T) {
	out, err := run(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "How to generate AI images")
	assert.Contains(t, out, "Financial portfolio analysis")

	out, err = run(t, "history", "list", "music")
	require.NoError(t, err)
	assert.Contains(t, out, "Compose relaxing ambient music")
	assert.NotContains(t, out, "Financial portfolio analysis")
}

func TestHistoryDelete(t *testing.T) {
	out, err := run(t, "history", "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ History item deleted")
	assert.NotContains(t, out, "Analyze sentiment")
	assert.Contains(t, out, "Create a Python function for sorting")

	out, err = run(t, "history", "delete", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "No search with id 99")
	assert.NotContains(t, out, "History item deleted")

	_, err = run(t, "history", "delete", "three")
	assert.Error(t, err)
}

func TestHistoryClear(t *testing.T) {
	answerConfirm(t, false)
	out, err := run(t, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.NotContains(t, out, "cleared")

	answerConfirm(t, true)
	out, err = run(t, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "✓ All search history cleared\n", out)
}

func TestAccountDelete(t *testing.T) {
	answerPhrase(t, "delete")
	out, err := run(t, "account", "delete")
	assert.ErrorIs(t, err, gate.ErrInvalidConfirmation)
	assert.NotContains(t, out, "submitted")

	answerPhrase(t, "DELETE")
	out, err = run(t, "account", "delete")
	require.NoError(t, err)
	assert.Equal(t, "✓ "+settings.AccountDeletedNotice+"\n", out)
}

func TestState(t *testing.T) {
	out, err := run(t, "state")
	require.NoError(t, err)

	var snap settings.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "General", snap.Tab)
	assert.Len(t, snap.History, 8)
	assert.False(t, snap.DeleteAccountGate.Open)
	assert.Equal(t, "DELETE", snap.DeleteAccountGate.Phrase)
	assert.Empty(t, snap.Notice)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Regexp(t, `confirm_phrase\s+DELETE`, out)
	assert.Regexp(t, `notice_duration\s+3s`, out)
	assert.Regexp(t, `log.level\s+debug`, out)
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"chatbot", "chatbot"},
		{"codegen", "code-generator"},
		{" Settings ", "settings"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := resolvePage(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolvePage("zzzzqqq")
	assert.ErrorIs(t, err, demo.ErrUnknownPage)
}
