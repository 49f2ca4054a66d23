package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/gardentrack/config"
	"github.com/fekuna/gardentrack/internal/auth"
	"github.com/fekuna/gardentrack/internal/cli"
	"github.com/fekuna/gardentrack/internal/kv"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/metrics"
	"github.com/fekuna/gardentrack/internal/scanner"
	"github.com/fekuna/gardentrack/internal/seed"
	"github.com/fekuna/gardentrack/internal/store"
	"github.com/fekuna/gardentrack/internal/ui"

	authH "github.com/fekuna/gardentrack/internal/auth/handler"

	cropH "github.com/fekuna/gardentrack/internal/crop/handler"
	cropUCPkg "github.com/fekuna/gardentrack/internal/crop/usecase"

	harvestH "github.com/fekuna/gardentrack/internal/harvest/handler"
	harvestUCPkg "github.com/fekuna/gardentrack/internal/harvest/usecase"

	memberH "github.com/fekuna/gardentrack/internal/member/handler"
	memberUCPkg "github.com/fekuna/gardentrack/internal/member/usecase"

	scanH "github.com/fekuna/gardentrack/internal/scanner/handler"

	shopH "github.com/fekuna/gardentrack/internal/shop/handler"
	shopUCPkg "github.com/fekuna/gardentrack/internal/shop/usecase"

	spaceH "github.com/fekuna/gardentrack/internal/space/handler"
	spaceUCPkg "github.com/fekuna/gardentrack/internal/space/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Metrics
	m := metrics.New()
	if cfg.Metrics.TextfilePath != "" {
		defer func() {
			if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
				appLogger.Warn("Could not write metrics textfile", zap.String("path", cfg.Metrics.TextfilePath), zap.Error(err))
			}
		}()
	}

	// 4. Load seed data and build the store
	data, err := seed.Load(cfg.Seed.File)
	if err != nil {
		appLogger.Error("Could not load seed data", zap.String("file", cfg.Seed.File), zap.Error(err))
		return 1
	}
	gardenStore := store.New(store.WithSeed(data), store.WithObserver(m))

	// 5. Open the session database
	kvStore, err := kv.OpenSQLite(cfg.Session.DBPath)
	if err != nil {
		appLogger.Error("Could not open session database", zap.String("path", cfg.Session.DBPath), zap.Error(err))
		return 1
	}
	defer kvStore.Close()
	appLogger.Debug("Opened session database", zap.String("path", cfg.Session.DBPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Initialize the credential directory
	sessions, err := auth.NewDirectory(ctx, kvStore, []byte(cfg.Session.SecretKey),
		auth.WithBcryptCost(cfg.Session.BcryptCost),
		auth.WithLogger(appLogger),
		auth.WithRecorder(m),
		auth.WithDemoAccounts(data.Accounts),
	)
	if err != nil {
		appLogger.Error("Could not restore accounts", zap.Error(err))
		return 1
	}

	// 7. Initialize UseCases
	spaceUC := spaceUCPkg.NewSpaceUseCase(gardenStore, appLogger)
	cropUC := cropUCPkg.NewCropUseCase(gardenStore, appLogger)
	harvestUC := harvestUCPkg.NewHarvestUseCase(gardenStore, appLogger)
	memberUC := memberUCPkg.NewMemberUseCase(gardenStore, appLogger)
	shopUC := shopUCPkg.NewShopUseCase(gardenStore, appLogger)

	// 8. Initialize Handlers
	app := cli.NewApp(cfg.Server.AppName, sessions, gardenStore, appLogger).
		Register(
			spaceH.NewSpaceHandler(spaceUC, gardenStore, appLogger),
			cropH.NewCropHandler(cropUC, gardenStore, appLogger),
			harvestH.NewHarvestHandler(harvestUC, gardenStore, appLogger),
			memberH.NewMemberHandler(memberUC, gardenStore, appLogger),
			shopH.NewShopHandler(shopUC, gardenStore, appLogger),
			scanH.NewScanHandler(gardenStore, gardenStore, cfg.Scanner.Prefix, cfg.Scanner.Device, appLogger,
				scanner.WithRecorder(m)),
		).
		RegisterSet(authH.NewAuthHandler(sessions, appLogger))

	// 9. Run
	root := app.Root()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		appLogger.Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return 1
	}
	return 0
}
