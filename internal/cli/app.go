package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"svcadmin/internal/api"
	"svcadmin/internal/auth"
	"svcadmin/internal/config"
	"svcadmin/internal/logging"
	"svcadmin/internal/services"
)

// App wires the console together: the backend client, the page managers,
// the authenticator, and the interactive I/O.
type App struct {
	config    *config.Config
	auth      auth.Authenticator
	client    *api.HTTPClient
	svcs      *services.SvcManager
	users     *services.UserManager
	dashboard *services.Dashboard
	notify    *ConsoleNotifier
	log       logging.Logger

	session *auth.Session
	current Page
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if c.AdminPasswordHash == "" {
		return nil, errors.New("admin password hash is not configured")
	}
	if c.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	client := api.NewHTTPClient(c.ServerAddr, c.RequestTimeout)
	notify := &ConsoleNotifier{W: os.Stdout}

	tokens := auth.NewTokenManager([]byte(c.JWTSecret), c.JWTIssuer, c.JWTTTL)
	authn := auth.NewStatic(c.AdminEmail, []byte(c.AdminPasswordHash), tokens)

	return &App{
		config:    c,
		auth:      authn,
		client:    client,
		svcs:      services.NewSvcManager(client, notify, log),
		users:     services.NewUserManager(client, notify, log),
		dashboard: services.NewDashboard(client, notify, log),
		notify:    notify,
		log:       log,
		current:   PageDashboard,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the console: an initial login prompt, then the command loop.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "SVC Admin Console (type 'help' for commands)")

	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) currentPage() Page {
	return a.current
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Email, a.current)
}
