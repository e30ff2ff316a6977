package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/cmd/rota/commands"
	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/clients/sheetsclient"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/notify"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/postgres"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/utils/logging"
)

var (
	configPath string
	actor      string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "Care-home rota console - manage weekly duty rosters",
		Long:  `A console for managing weekly care-home rotas: shift layout, staff assignment, rule validation, auto-generation, and publishing.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (defaults to care_rota_config.yaml in . or ~)")
	rootCmd.PersistentFlags().StringVarP(&actor, "actor", "a", defaultActor(), "Acting identity recorded on every change")

	rootCmd.AddCommand(commands.CreateRotaCmd(appRef()))
	rootCmd.AddCommand(commands.AddShiftCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveShiftCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCmd(appRef()))
	rootCmd.AddCommand(commands.UnassignCmd(appRef()))
	rootCmd.AddCommand(commands.SuggestCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateRotaCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateRotaCmd(appRef()))
	rootCmd.AddCommand(commands.PublishRotaCmd(appRef()))
	rootCmd.AddCommand(commands.UnpublishRotaCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteRotaCmd(appRef()))
	rootCmd.AddCommand(commands.ViewRotaCmd(appRef()))
	rootCmd.AddCommand(commands.ListRotasCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef hands commands the shared context before initApp has filled it in.
// Cobra builds the command tree up front; the fields are set by the time any
// RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, clients, and the rota store
func initApp() error {
	appRef()
	app.Ctx = context.Background()
	app.Actor = actor

	var err error
	app.Logger, err = logging.InitLogger("rota")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting rota console", zap.String("actor", actor))

	app.Logger.Info("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("site", app.Cfg.Site))

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Connecting to staff directory")
	sheets, err := sheetsclient.NewClient(app.Ctx, oauthCfg)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Staff = sheets
	app.Logger.Debug("Staff directory client ready")

	app.Logger.Info("Connecting to rota store")
	db, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = db
	app.Weeks = db
	app.Logger.Info("Rota store ready")

	app.Notifier = notify.NewLogSink(app.Logger)

	return nil
}

// defaultActor picks the OS user as the acting identity when --actor is not
// given.
func defaultActor() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	return "unknown"
}
