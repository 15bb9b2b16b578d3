package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/config"
	"github.com/dmitrijs2005/authmaster/internal/client/controller"
	"github.com/dmitrijs2005/authmaster/internal/client/database"
	"github.com/dmitrijs2005/authmaster/internal/client/llm/openaicompat"
	"github.com/dmitrijs2005/authmaster/internal/client/repositories/records"
	"github.com/dmitrijs2005/authmaster/internal/client/services"
	"github.com/dmitrijs2005/authmaster/internal/common"
	"github.com/dmitrijs2005/authmaster/internal/cryptox"
	"github.com/dmitrijs2005/authmaster/internal/logging"
)

type App struct {
	ctrl   *controller.Controller
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	close  func() error
}

// NewApp wires the storage, services and controller described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	repo, closeFn, err := openRecords(ctx, c)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "error", err)
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.Hasher)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	accounts, err := services.NewAccountStore(repo, hasher, services.AccountStoreOptions{
		RegisterDelay: c.RegisterDelay,
		LoginDelay:    c.LoginDelay,
	})
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	secret, err := tokenSecret(c.TokenSecret)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	if c.TokenSecret == "" {
		logger.Warn(ctx, "no token secret configured, using a random one for this process")
	}
	sessions := services.NewSessionManager(repo, auth.NewJWTIssuer(secret))

	if c.LLMAPIKey == "" {
		logger.Info(ctx, "API_KEY is not set, explanations are disabled")
	}
	model := openaicompat.New(c.LLMAPIKey, c.LLMBaseURL, c.LLMModel, c.LLMTimeout)
	explainer := services.NewExplainService(model)

	ctrl := controller.New(accounts, sessions, explainer, logger)

	logger.Debug(ctx, "client wired", "storage", c.Storage, "hasher", c.Hasher)
	return newApp(ctrl, logger, os.Stdin, os.Stdout, closeFn), nil
}

func newApp(ctrl *controller.Controller, logger logging.Logger, in io.Reader, out io.Writer, closeFn func() error) *App {
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return &App{
		ctrl:   ctrl,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
		close:  closeFn,
	}
}

func openRecords(ctx context.Context, c *config.Config) (records.Repository, func() error, error) {
	if c.Storage == config.StorageMemory {
		return records.NewMemoryRepository(), func() error { return nil }, nil
	}

	db, err := database.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return records.NewSQLiteRepository(db), db.Close, nil
}

func tokenSecret(configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	return common.GenerateRandByteArray(32)
}

// Run restores the saved session, then serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.ctrl.Teardown()
		if err := a.close(); err != nil {
			a.logger.Error(ctx, "error closing storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to AuthMaster (type 'help' for commands)")
	a.ctrl.Init(ctx)
	a.render()

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.State().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.ctrl.State()
	if st.IsAuthenticated && st.Account != nil {
		return fmt.Sprintf("(%s %s)", a.ctrl.View(), st.Account.Email)
	}
	return fmt.Sprintf("(%s)", a.ctrl.View())
}

func (a *App) render() {
	renderScreen(a.out, a.ctrl.Screen())
}
