// Package server wires storage, mail delivery and the services together
// and runs the gRPC server until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/mail"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/containers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/vaultkeeper/internal/server/grpc"
)

// seams for tests
var (
	sqlOpen     = sql.Open
	newS3Client = func(ctx context.Context, o containers.S3Options) (containers.ObjectAPI, error) {
		return containers.NewS3Client(ctx, o)
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel), "vaultkeeper-server")
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, rm, err := initStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	mailer := initMailer(c, logger)

	ar := services.NewAuthRequestService(db, rm, mailer, logger, c)
	as := services.NewAccountService(db, rm)
	ss := services.NewSessionService(db, rm, ar, as, logger, c)
	st := services.NewStoreService(db, rm, services.JSONCodec{}, logger)

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, ar, ss, as, st)

	logger.Info(ctx, "app configured",
		"storage", c.Storage,
		"containers", c.ContainerStorage,
		"mail", c.MailBackend,
	)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func initStorage(ctx context.Context, c *config.Config) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.Storage == config.StorageMemory {
		return nil, repomanager.NewInMemoryRepositoryManager(), nil
	}

	var opts []repomanager.Option
	if c.ContainerStorage == config.ContainersS3 {
		client, err := newS3Client(ctx, containers.S3Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("s3 init error: %w", err)
		}
		opts = append(opts, repomanager.WithContainers(containers.NewS3Repository(client, c.S3Bucket)))
	}

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager(opts...)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migrations error: %w", err)
	}

	return db, rm, nil
}

func initMailer(c *config.Config, logger logging.Logger) mail.Sender {
	if c.MailBackend == config.MailSMTP {
		return mail.NewSMTPSender(c.SMTPAddr, c.MailFrom, c.SMTPUser, c.SMTPPassword)
	}
	return mail.NewLogSender(logger)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "close db", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
