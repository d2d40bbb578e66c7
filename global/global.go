package global

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/topout/crux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type GlobalConfig struct {
	ClimberName string
	Debug       bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		ClimberName: "Climber",
	}

	initLogger zerolog.Logger
)

func GlobalInit(shouldLog bool) {
	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging for config debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	configContents, err := os.ReadFile(configFilepath)
	if err != nil {
		_, err := os.Create(configFilepath)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create config file")
		}
	}

	// Non-empty config file
	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to read config file")
		} else {
			Opt = populateConfig(newOpts)
		}
	} else {
		config := populateConfig(GlobalConfig{})
		configBytes, err := json.Marshal(config)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to marshal default config values")
		}

		if err := os.WriteFile(configFilepath, configBytes, 0666); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}

		Opt = config
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	// Main global logger
	log.Logger = createLogger(configDir, level)
	if !shouldLog {
		log.Logger = zerolog.Nop()
	}

	// Bridge the engine's logr logging into zerolog
	crux.SetInternalLogger(zerologr.New(&log.Logger))
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "topout")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	// The UI owns stdout, so logs only go to file
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
	crux.SetInternalLogger(zerologr.New(&log.Logger))
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.ClimberName == "" {
		config.ClimberName = "Climber"
	}

	return config
}
