package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (pacman when omitted).

Controls:
  Arrows/WASD/HJKL - Move (turns are buffered until the corridor opens)
  P/Esc            - Pause
  R                - Restart (after the round ends)
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow pursuers, start at lowest difficulty
  normal - Start at 30% difficulty, progresses as you eat
  hard   - Fast pursuers, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  pacman play
  pacman play --difficulty easy
  pacman play --config ./my-pacman.yaml --sound=false`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects (overrides the config's audio.enabled)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "pacman"
	if len(args) == 1 {
		gameID = args[0]
	}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return err
	}

	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)

	soundOn := cfg.Audio.Enabled
	if cmd.Flags().Changed("sound") {
		soundOn = flagSound
	}
	if soundOn {
		spk := audio.NewSpeaker(cfg.Audio.Volume)
		if err := spk.Init(); err != nil {
			logger.Warn("sound disabled, no audio device", "error", err)
		} else {
			defer spk.Close()
			pacman.SetAudio(spk)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Games pick up the logger, config and audio settings when created.
	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w, run 'pacman list' to see available games", err)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Debug("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed, "sound", soundOn)
	if err := tui.Run(game, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
