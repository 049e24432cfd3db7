// Package main provides the entry point for the survey viewer.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ghssrc/survey-viewer/internal/config"
	"github.com/ghssrc/survey-viewer/internal/logging"
	"github.com/ghssrc/survey-viewer/internal/model"
	"github.com/ghssrc/survey-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "org.ghssrc.survey-viewer"

// flags holds the raw command line values before they are merged with the
// config file
type flags struct {
	configPath   string
	datasetPath  string
	overviewPath string
	journalPath  string
	logoPath     string
	logoScale    float64
	fullscreen   bool
	windowWidth  int
	windowHeight int
	logLevel     string
	logFormat    string
	language     string
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the root command. start receives the merged settings.
func newRootCmd(start func(*config.Settings) error) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "survey-viewer",
		Short:         "Browse the classroom correlation survey and project notebooks",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}
			return start(settings)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", config.DefaultConfigPath, "TOML config file (optional)")
	fs.StringVar(&f.datasetPath, "dataset", config.DefaultDatasetPath, "survey CSV file")
	fs.StringVar(&f.overviewPath, "overview", config.DefaultOverviewPath, "project overview notebook")
	fs.StringVar(&f.journalPath, "journal", config.DefaultJournalPath, "project journal notebook")
	fs.StringVar(&f.logoPath, "logo", config.DefaultLogoPath, "logo image shown on the home screen")
	fs.Float64Var(&f.logoScale, "logo-scale", config.DefaultLogoScale, "logo display scale")
	fs.BoolVar(&f.fullscreen, "fullscreen", config.DefaultFullscreen, "start in fullscreen")
	fs.IntVar(&f.windowWidth, "window-width", config.DefaultWindowWidth, "window width when not fullscreen")
	fs.IntVar(&f.windowHeight, "window-height", config.DefaultWindowHeight, "window height when not fullscreen")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
	fs.StringVar(&f.language, "lang", config.DefaultLanguage, "UI language")

	return cmd
}

// loadSettings merges defaults, the config file and explicitly set flags,
// in that order of increasing precedence
func loadSettings(cmd *cobra.Command, f *flags) (*config.Settings, error) {
	fileCfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyStringConfig(cmd, "dataset", &f.datasetPath, fileCfg.Data.Dataset)
	applyStringConfig(cmd, "overview", &f.overviewPath, fileCfg.Data.Overview)
	applyStringConfig(cmd, "journal", &f.journalPath, fileCfg.Data.Journal)
	applyStringConfig(cmd, "logo", &f.logoPath, fileCfg.Data.Logo)
	applyFloatConfig(cmd, "logo-scale", &f.logoScale, fileCfg.Display.LogoScale)
	applyBoolConfig(cmd, "fullscreen", &f.fullscreen, fileCfg.Display.Fullscreen)
	applyIntConfig(cmd, "window-width", &f.windowWidth, fileCfg.Display.WindowWidth)
	applyIntConfig(cmd, "window-height", &f.windowHeight, fileCfg.Display.WindowHeight)
	applyStringConfig(cmd, "lang", &f.language, fileCfg.Display.Language)
	applyStringConfig(cmd, "log-level", &f.logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &f.logFormat, fileCfg.Log.Format)

	settings := config.NewSettings()
	settings.DatasetPath = f.datasetPath
	settings.OverviewPath = f.overviewPath
	settings.JournalPath = f.journalPath
	settings.LogoPath = f.logoPath
	settings.SetLogoScale(f.logoScale)
	settings.Fullscreen = f.fullscreen
	settings.WindowWidth = f.windowWidth
	settings.WindowHeight = f.windowHeight
	settings.LogLevel = f.logLevel
	settings.LogFormat = f.logFormat
	settings.Language = f.language

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func run(settings *config.Settings) error {
	root, err := logging.New(os.Stderr, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	log := logging.Component(root, "main")
	log.Info().
		Str("version", version).
		Str("dataset", settings.DatasetPath).
		Str("overview", settings.OverviewPath).
		Str("journal", settings.JournalPath).
		Str("logo", settings.LogoPath).
		Float64("logo_scale", settings.LogoScale).
		Bool("fullscreen", settings.Fullscreen).
		Msg("survey viewer starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSurveyTheme())

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.Language)
	if current := localization.GetCurrentLanguage(); current != settings.Language {
		log.Warn().
			Str("requested", settings.Language).
			Str("language", current).
			Msg("language unavailable, using fallback")
	}

	myWindow := myApp.NewWindow(localization.GetText(ui.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))
	myWindow.SetFullScreen(settings.Fullscreen)
	myWindow.SetMaster()

	logo, err := ui.LoadLogo(settings.LogoPath, settings.LogoScale)
	if err != nil {
		log.Warn().Err(err).Msg("logo unavailable, continuing without it")
	}

	nav := ui.NewNavigator(myWindow, myApp, ui.Options{
		Settings:     settings,
		Logo:         logo,
		Localization: localization,
		Logger:       root,
	})
	if err := nav.Navigate(model.ScreenHome); err != nil {
		return fmt.Errorf("failed to open home screen: %w", err)
	}

	myWindow.ShowAndRun()
	log.Info().Msg("survey viewer stopped")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
