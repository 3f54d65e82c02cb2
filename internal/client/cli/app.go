package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/config"
	"github.com/dmitrijs2005/devpair/internal/client/services"
	"github.com/dmitrijs2005/devpair/internal/client/views"
	"github.com/dmitrijs2005/devpair/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	api    client.Client
	auth   services.AuthService
	reader *bufio.Reader
	out    io.Writer
	color  bool

	// projects keeps the browser's filters and page between commands.
	projects *views.Projects
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(c.LogLevel, os.Stderr)

	db, err := client.InitDatabase(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.ServerURL,
		client.WithLogger(log),
		client.WithTimeout(c.RequestTimeout),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(api, db, log)

	return &App{
		config:   c,
		log:      log,
		api:      api,
		auth:     as,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		color:    isTerminal(os.Stdout),
		projects: views.NewProjects(api, log),
	}, nil
}

// Run restores the session in the background and blocks in the REPL until
// the user exits or stdin is closed. Guarded commands typed before the
// restore finishes wait for it.
func (a *App) Run(ctx context.Context) {
	restored := make(chan struct{})
	go func() {
		defer close(restored)
		if err := a.auth.Initialize(ctx); err != nil {
			a.log.Error(ctx, "session restore failed", "err", err)
		}
	}()
	// The store must outlive the restore.
	defer func() {
		<-restored
		if err := a.auth.Close(ctx); err != nil {
			a.log.Error(ctx, "error closing session store", "err", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to DevPair CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().User != nil
}

func (a *App) getStatus() string {
	st := a.auth.State()
	switch {
	case st.Loading:
		return "(loading)"
	case st.User != nil:
		return fmt.Sprintf("(%s)", st.User.Username)
	}
	return ""
}
