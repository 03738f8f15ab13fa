// Package root contains the root command for the application and the shared
// wiring every subcommand uses.
package root

import (
	"context"

	"mbaxter/ledgerize/internal/categorizer"
	"mbaxter/ledgerize/internal/config"
	"mbaxter/ledgerize/internal/extract"
	"mbaxter/ledgerize/internal/importer"
	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/normalizer"
	"mbaxter/ledgerize/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App bundles the configured stores, the categorization engine, and the
// importer for use by subcommands.
type App struct {
	Config     *config.Config
	Logger     logging.Logger
	Mappings   *store.MappingStore
	Records    *store.RecordStore
	Engine     *categorizer.Engine
	Normalizer *normalizer.Normalizer
	Importer   *importer.Importer
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	app *App

	// Shared flags.
	DataDir string
	Month   string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "ledgerize",
		Short: "Normalize and categorize personal financial documents.",
		Long: `ledgerize ingests credit-card statements and pay stubs (CSV, JSON,
AI-extracted or OCR-extracted documents), normalizes them into canonical
records, categorizes spending, and persists everything as JSON.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))

			if err := buildApp(cmd.Context()); err != nil {
				Log.Fatalf("Failed to initialize: %v", err)
			}
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Data directory (default ~/.config/ledgerize)")
	Cmd.PersistentFlags().StringVarP(&Month, "month", "m", "", "Target month as YYYY-MM")
}

// GetApp returns the wired application, available after PersistentPreRun.
func GetApp() *App {
	return app
}

// GetLogger returns the shared logger behind the logging interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

func buildApp(ctx context.Context) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	logger := GetLogger()

	dataDir := DataDir
	if dataDir == "" {
		dataDir = cfg.Data.Directory
	}
	kv := store.NewFileKV(dataDir)
	store.SetLogger(logger)

	mappings, err := store.NewMappingStore(kv)
	if err != nil {
		return err
	}
	records := store.NewRecordStore(kv)

	rules, err := store.LoadKeywordRules(cfg.Data.RulesFile)
	if err != nil {
		return err
	}
	engine := categorizer.NewEngine(rules, logger)
	norm := normalizer.New(engine, logger)

	opts := importer.Options{}
	if cfg.AI.Enabled {
		gemini, err := extract.NewGeminiExtractor(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			logger.WithError(err).Warn("AI extraction unavailable")
		} else {
			opts.AI = gemini
			opts.PaycheckAI = gemini
		}
	}
	if cfg.OCR.Command != "" {
		opts.OCR = extract.NewOCRRunner(cfg.OCR.Command, cfg.OCR.Args, logger)
	}

	app = &App{
		Config:     cfg,
		Logger:     logger,
		Mappings:   mappings,
		Records:    records,
		Engine:     engine,
		Normalizer: norm,
		Importer:   importer.New(norm, mappings, records, opts, logger),
	}
	return nil
}
