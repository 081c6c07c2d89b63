package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/credenciamento-api/internal/application/analytics"
	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/importer"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/internal/application/validation"
	infraexcel "github.com/jhoicas/credenciamento-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/credenciamento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/credenciamento-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/credenciamento-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/credenciamento-api/internal/interfaces/http"
	"github.com/jhoicas/credenciamento-api/pkg/config"
	"github.com/jhoicas/credenciamento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	funcionarioRepo := postgres.NewFuncionarioRepository(pool)
	credenciadoRepo := postgres.NewCredenciadoRepository(pool)
	planoRepo := postgres.NewPlanoRepository(pool)
	solicitacaoRepo := postgres.NewSolicitacaoRepository(pool)
	credenciadoraRepo := postgres.NewCredenciadoraRepository(pool)
	segmentoRepo := postgres.NewSegmentoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	storage := infrastorage.NewLocalStorage(cfg.Storage)
	validate := validation.New()

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo, credenciadoraRepo, authUC)
	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarioRepo, empresaRepo, authUC)
	credenciadoUC := usecase.NewCredenciadoUseCase(credenciadoRepo, credenciadoraRepo, authUC, storage)
	planoUC := usecase.NewPlanoUseCase(planoRepo)
	solicitacaoUC := usecase.NewSolicitacaoUseCase(solicitacaoRepo)
	credenciadoraUC := usecase.NewCredenciadoraUseCase(credenciadoraRepo, segmentoRepo, authUC)

	csvImporter := importer.NewCSVImporter(funcionarioUC, empresaRepo, validate, log)

	overviewUC := analytics.NewOverviewUseCase(
		empresaRepo, funcionarioRepo, credenciadoRepo, planoRepo, solicitacaoRepo,
		infraexcel.NewWorkbookExporter(), infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Logos e demais binários gravados pelo armazenamento local.
	app.Static(cfg.Storage.BaseURL, storage.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:       empresaUC,
		FuncionarioUC:   funcionarioUC,
		CredenciadoUC:   credenciadoUC,
		PlanoUC:         planoUC,
		SolicitacaoUC:   solicitacaoUC,
		CredenciadoraUC: credenciadoraUC,
		OverviewUC:      overviewUC,
		Importer:        csvImporter,
		AuthUC:          authUC,
		Validate:        validate,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
