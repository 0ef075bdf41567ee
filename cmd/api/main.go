package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-deck-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-deck-api/infrastructure/integrator/narrative"
	"github.com/vfg2006/store-deck-api/infrastructure/integrator/narrative/narrativeclient"
	"github.com/vfg2006/store-deck-api/infrastructure/repository"
	"github.com/vfg2006/store-deck-api/internal/api"
	"github.com/vfg2006/store-deck-api/internal/config"
	"github.com/vfg2006/store-deck-api/internal/scheduler"
	"github.com/vfg2006/store-deck-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-deck-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-deck-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	narrativeClient := narrativeclient.NewClient(cfg)
	narrativeIntegrator := narrative.New(cfg, narrativeClient)

	aggregatorService := aggregating.NewService(cfg, orderRepo, customerRepo, productRepo)
	reportService := reporting.NewService(cfg, aggregatorService, narrativeIntegrator)

	// Inicializa o agendador de retenção dos decks publicados
	archiveCleanupService := scheduler.NewArchiveCleanupService(cfg)

	if err := archiveCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de decks")
	} else {
		logrus.Info("Agendador de limpeza de decks iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		reportService,
		authenticator,
		archiveCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
