// portalknight is a tile game: collect the coins, dodge the enemies and
// step into the portal.
//
// Usage:
//
//	portalknight                  - Play (default)
//	portalknight account create   - Create or reset an account
//	portalknight scores           - Show the best players
//	portalknight levels           - List configured levels
//	portalknight replay <file>    - Re-run a recorded attempt headlessly
//
// Global flags:
//
//	--config <dir>  - Read game.yaml and levels/ from dir
//	--assets <dir>  - Read sprite sheets and sounds from dir (default: built-in set)
//	--db <path>     - Account database (default: storage.path from game.yaml)
//	--debug         - Verbose logging and TPS overlay
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalknight/internal/application/flow"
	"github.com/younwookim/portalknight/internal/application/game"
	"github.com/younwookim/portalknight/internal/application/scene/ui"
	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/infrastructure/sound"
	"github.com/younwookim/portalknight/internal/infrastructure/storage"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagDBPath   string
	flagLogin    string
	flagPassword string
	flagDebug    bool

	// Play flags
	flagRecord string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portalknight",
	Short: "Portal Knight - collect the coins and reach the portal",
	Long: `Portal Knight is a tile game. Walk the knight with the arrow keys,
collect every coin you can, avoid the enemies and step into the portal.

Available commands:
  account  - Manage player accounts
  scores   - View the best players
  levels   - List the configured levels
  replay   - Re-run a recorded attempt

Examples:
  portalknight
  portalknight --login ann --password secret
  portalknight --record run.json
  portalknight replay run.json`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  func(*cobra.Command, []string) { setupLogging() },
	RunE:              runPlay,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config directory holding game.yaml and levels/")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: built-in sprites)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the account database")
	rootCmd.PersistentFlags().StringVar(&flagLogin, "login", "", "Account login")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "Account password")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
}

func setupLogging() {
	log.SetPrefix("portalknight")
	log.SetReportTimestamp(true)
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	cfg := rt.cfg
	d := cfg.Display

	fonts, err := ui.LoadFonts()
	if err != nil {
		return err
	}

	var cues session.CuePlayer
	pickup, err := rt.pickupCue()
	if err != nil {
		return err
	}
	player := sound.NewPlayer(audio.NewContext(int(pickup.Rate)), pickup)
	defer player.Close()
	if player != nil {
		cues = player
	}

	ctrl := flow.NewController(cfg.LevelCount(), flow.Layout{Width: d.ScreenWidth, Height: d.ScreenHeight})
	ctrl.SetSoundEnabled(!flagMute)

	acct := signIn(rt, ctrl)

	director := game.NewDirector(game.Options{
		Title:      d.Title,
		Player:     acct.login,
		Levels:     cfg.Levels.Files,
		Session:    rt.session,
		RecordPath: flagRecord,
	}, ctrl, rt.loader, rt.sprites, cues, fonts)

	g := game.New(director.Menu(), d.ScreenWidth, d.ScreenHeight)
	g.SetTPS(d.TPS)
	g.SetDebug(flagDebug)

	scale := max(d.Scale, 1)
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	log.Info("starting", "config", rt.loader.Source(), "levels", cfg.LevelCount(), "player", acct.name())
	runErr := ebiten.RunGame(g)
	g.Close()

	acct.save(ctrl)

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	log.Info("bye", "score", ctrl.Score(), "attempts", ctrl.Attempts())
	return nil
}

// account is the signed-in player of a run; a zero account is a guest
type account struct {
	login string
	store *storage.Store
}

func (a account) name() string {
	if a.login == "" {
		return "guest"
	}
	return a.login
}

// signIn authenticates --login/--password and seeds the controller with
// the stored progress. Any failure falls back to guest mode.
func signIn(rt *runtime, ctrl *flow.Controller) account {
	if flagLogin == "" {
		return account{}
	}

	store, err := storage.Open(rt.dbPath(), rt.cfg.LevelCount())
	if err != nil {
		log.Warn("storage unavailable, playing as guest", "error", err)
		return account{}
	}

	ok, err := store.Authenticate(flagLogin, flagPassword)
	if err != nil || !ok {
		if err != nil {
			log.Warn("authentication failed, playing as guest", "error", err)
		} else {
			log.Warn("wrong login or password, playing as guest", "login", flagLogin)
		}
		store.Close()
		return account{}
	}

	levels, err := store.LevelProgress(flagLogin)
	if err != nil {
		log.Warn("failed to read progress", "login", flagLogin, "error", err)
	}
	ctrl.SetProgress(levels)
	log.Debug("signed in", "login", flagLogin, "score", ctrl.Score())
	return account{login: flagLogin, store: store}
}

// save writes the run's progress and closes the store. Errors only lose progress.
func (a account) save(ctrl *flow.Controller) {
	if a.store == nil {
		return
	}
	defer a.store.Close()

	if err := a.store.SaveProgress(a.login, ctrl.Score(), ctrl.Progress()); err != nil {
		log.Error("failed to save progress", "login", a.login, "error", err)
		return
	}
	log.Info("progress saved", "login", a.login, "score", ctrl.Score())
}
