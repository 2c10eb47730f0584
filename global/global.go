package global

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up"),
	)
	// Menus don't have text inputs so they also get vim keys
	MenuDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MenuUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	NextPokemonKey = key.NewBinding(key.WithKeys("ctrl+n", "pgdown"))
	PrevPokemonKey = key.NewBinding(key.WithKeys("ctrl+p", "pgup"))
	OpenMovesKey   = key.NewBinding(key.WithKeys("ctrl+o"))

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))
	QuitKey = key.NewBinding(key.WithKeys(tea.KeyCtrlC.String()))

	Opt = populateConfig(GlobalConfig{})

	previousLevel zerolog.Level
)

// GlobalInit loads the config file and sets up logging.
// When shouldLog is false everything is discarded (tests, piped cli output).
func GlobalInit(shouldLog bool) {
	configDir := DefaultConfigDir()

	// Basic logging for config debugging
	initLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	config, err := LoadConfig(DefaultConfigLocation())
	if err != nil {
		initLogger.Err(err).Str("path", DefaultConfigLocation()).Msg("error occurred while loading config, using defaults")
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		log.Logger = createLogger(configDir, level, initLogger)
	} else {
		log.Logger = zerolog.Nop()
	}

	dex.SetInternalLogger(zerologr.New(&log.Logger))
}

func createFileWriter(configDir string) (io.Writer, error) {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "pokedex", Opt.Log.MaxSizeMB, Opt.Log.MaxFiles)
	if err != nil {
		return nil, err
	}

	// NoColor keeps escape codes out of the log files
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}, nil
}

func createLogger(configDir string, level zerolog.Level, initLogger zerolog.Logger) zerolog.Logger {
	fileWriter, err := createFileWriter(configDir)
	if err != nil {
		initLogger.Err(err).Msg("couldn't create log directory, logging is disabled")
		return zerolog.Nop()
	}

	// Main global logger
	return zerolog.New(fileWriter).With().Timestamp().Caller().Logger().Level(level)
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = zerolog.Nop()
	dex.SetInternalLogger(zerologr.New(&log.Logger))
}

func ContinueLogging() {
	log.Logger = createLogger(DefaultConfigDir(), previousLevel, zerolog.Nop())
	dex.SetInternalLogger(zerologr.New(&log.Logger))
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}
