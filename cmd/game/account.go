package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/younwookim/portalknight/internal/infrastructure/storage"
)

var okStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ADE80"))

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage player accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account, or reset an existing one",
	Long: `Create a player account. An existing account with the same login is
reset: its password is replaced and its score and level progress are cleared.

Without --login and --password an interactive prompt is shown.

Examples:
  portalknight account create
  portalknight account create --login ann --password secret`,
	Args: cobra.NoArgs,
	RunE: runAccountCreate,
}

func init() {
	accountCmd.AddCommand(accountCreateCmd)
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	login, password, err := credentials("Create account")
	if err != nil {
		return err
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	store, err := storage.Open(rt.dbPath(), rt.cfg.LevelCount())
	if err != nil {
		return err
	}
	defer store.Close()

	ok, err := store.CreateOrResetAccount(login, password)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("login and password must not be empty")
	}

	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("account %q is ready", login)))
	return nil
}

// credentials takes --login/--password, prompting for whatever is missing
// when stdin is a terminal
func credentials(title string) (string, string, error) {
	if flagLogin != "" && flagPassword != "" {
		return flagLogin, flagPassword, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", errors.New("--login and --password are required when stdin is not a terminal")
	}
	return promptCredentials(title, flagLogin)
}
