package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalknight/internal/domain/entity"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
	"github.com/younwookim/portalknight/internal/infrastructure/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best players",
	Long: `Display the accounts with the highest score. The score is the sum of the
best coin count reached on every level.

Examples:
  portalknight scores
  portalknight scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of accounts to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	store, err := storage.Open(rt.dbPath(), rt.cfg.LevelCount())
	if err != nil {
		return err
	}
	defer store.Close()

	accounts, err := store.TopAccounts(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(accounts) == 0 {
		fmt.Fprintln(out, "No accounts yet.")
		fmt.Fprintln(out, "Run 'portalknight account create' to make one.")
		return nil
	}

	fmt.Fprintln(out, renderTable(scoreHeaders(rt.cfg.LevelCount()), scoreRows(accounts)))
	return nil
}

func scoreHeaders(levels int) []string {
	headers := []string{"#", "player", "score"}
	for i := range levels {
		headers = append(headers, "L"+strconv.Itoa(i+1))
	}
	return append(headers, "updated")
}

func scoreRows(accounts []storage.Account) [][]string {
	rows := make([][]string, 0, len(accounts))
	for i, a := range accounts {
		row := []string{strconv.Itoa(i + 1), a.Login, strconv.Itoa(a.Score)}
		for _, n := range a.Levels {
			row = append(row, strconv.Itoa(n))
		}
		updated := "-"
		if !a.UpdatedAt.IsZero() {
			updated = a.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, append(row, updated))
	}
	return rows
}

func runLevels(cmd *cobra.Command, args []string) error {
	embedded, err := configSub()
	if err != nil {
		return err
	}
	loader, err := config.Open(flagConfig, embedded)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rows, err := levelRows(loader, cfg.Levels.Files)
	if err != nil {
		return err
	}
	headers := []string{"#", "file", "size", "coins", "enemies", "obstacles", "spawn"}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
	return nil
}

// levelRows loads every level and summarizes its markers
func levelRows(loader *config.Loader, files []string) ([][]string, error) {
	rows := make([][]string, 0, len(files))
	for i, name := range files {
		g, err := loader.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		enemies := g.Count(entity.MarkerEnemyA) + g.Count(entity.MarkerEnemyB)
		obstacles := g.Count(entity.MarkerObstacle1) + g.Count(entity.MarkerObstacle2) + g.Count(entity.MarkerObstacle3)

		spawn := "ok"
		if _, err := g.PlayerSpawn(); err != nil {
			spawn = "fallback"
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			name,
			fmt.Sprintf("%dx%d", g.Width, g.Height),
			strconv.Itoa(g.Count(entity.MarkerCoin)),
			strconv.Itoa(enemies),
			strconv.Itoa(obstacles),
			spawn,
		})
	}
	return rows, nil
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
