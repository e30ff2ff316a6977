package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Store    services.RotaStore
	Weeks    WeekLister
	Staff    services.StaffDirectory
	Notifier services.Notifier
	Logger   *zap.Logger
	Ctx      context.Context
	Actor    string
}
