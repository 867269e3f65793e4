package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"inventory-console/internal/api"
	"inventory-console/internal/config"
	"inventory-console/internal/logger"
	"inventory-console/internal/model"
	"inventory-console/internal/route"
	"inventory-console/internal/session"
	"inventory-console/internal/storage"
	"inventory-console/internal/transport"
)

// errEntryDenied is returned by commands whose destination the gate refused;
// the navigator has already said whatever there is to say.
var errEntryDenied = errors.New("entry denied")

type app struct {
	cfg     *config.Config
	session *session.Store
	gate    *route.Gate
	nav     *consoleNavigator

	auth        *api.AuthClient
	devices     *api.DeviceClient
	departments *api.Resource[model.Department]
	statuses    *api.Resource[model.DeviceStatus]
	reasons     *api.Resource[model.MovementReason]
	reports     *api.ReportClient
	users       *api.UserAdminClient
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "inventory-console",
		Short:        "Console front-end for the device inventory service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDevicesCmd(a),
		newRefdataCmd(a),
		newReportsCmd(a),
		newUsersCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	handler := logger.NewConsoleHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	store, err := storage.NewFileStore(cfg.StateFile)
	if err != nil {
		return err
	}

	a.session = session.New(store, slog.Default())
	a.session.Restore()

	a.nav = newConsoleNavigator(os.Stdout)
	a.gate = route.NewGate(a.session, a.nav, loginRoute, homeRoute, slog.Default())
	for path, roles := range protectedRoutes {
		a.gate.Register(path, roles...)
	}

	rt := &transport.AuthTransport{
		Session:   a.session,
		Navigator: a.nav,
		LoginPath: loginRoute,
		AuthPaths: []string{api.LoginPath, api.RegisterPath},
		Limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1),
		Logger:    slog.Default(),
	}

	client := api.New(cfg.APIBaseURL, rt, cfg.HTTPTimeout, slog.Default())
	a.auth = api.NewAuthClient(client)
	a.devices = api.NewDeviceClient(client)
	a.departments = api.NewDepartmentClient(client)
	a.statuses = api.NewStatusClient(client)
	a.reasons = api.NewReasonClient(client)
	a.reports = api.NewReportClient(client)
	a.users = api.NewUserAdminClient(client)

	return nil
}

// enter runs the route gate for a destination before a command touches the
// API, the console's equivalent of pre-navigation guarding.
func (a *app) enter(path string) error {
	if decision := a.gate.Check(path); decision != route.Allow {
		return errEntryDenied
	}

	a.nav.visit(path)
	return nil
}
