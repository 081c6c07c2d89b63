package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/analytics"
	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/importer"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpresaUC       *usecase.EmpresaUseCase
	FuncionarioUC   *usecase.FuncionarioUseCase
	CredenciadoUC   *usecase.CredenciadoUseCase
	PlanoUC         *usecase.PlanoUseCase
	SolicitacaoUC   *usecase.SolicitacaoUseCase
	CredenciadoraUC *usecase.CredenciadoraUseCase
	OverviewUC      *analytics.OverviewUseCase
	Importer        *importer.CSVImporter
	AuthUC          *auth.AuthUseCase
	Validate        *validator.Validate
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validate)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas (protegido)
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC, deps.Validate)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), empresaHandler.Delete)

	// Funcionários (protegido; importação antes das rotas com :id)
	funcionarios := protected.Group("/funcionarios")
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC, deps.Importer, deps.Validate)
	funcionarios.Post("/import", funcionarioHandler.Import)
	funcionarios.Get("/import/template", funcionarioHandler.Template)
	funcionarios.Post("/", funcionarioHandler.Create)
	funcionarios.Get("/", funcionarioHandler.List)
	funcionarios.Get("/:id", funcionarioHandler.GetByID)
	funcionarios.Put("/:id", funcionarioHandler.Update)
	funcionarios.Delete("/:id", funcionarioHandler.Delete)

	// Credenciados (protegido)
	credenciados := protected.Group("/credenciados")
	credenciadoHandler := NewCredenciadoHandler(deps.CredenciadoUC, deps.Validate)
	credenciados.Post("/", credenciadoHandler.Create)
	credenciados.Get("/", credenciadoHandler.List)
	credenciados.Get("/:id", credenciadoHandler.GetByID)
	credenciados.Put("/:id", credenciadoHandler.Update)
	credenciados.Post("/:id/logo", credenciadoHandler.UploadLogo)
	credenciados.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), credenciadoHandler.Delete)

	// Planos (protegido)
	planos := protected.Group("/planos")
	planoHandler := NewPlanoHandler(deps.PlanoUC, deps.Validate)
	planos.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), planoHandler.Create)
	planos.Get("/", planoHandler.List)
	planos.Get("/:id", planoHandler.GetByID)
	planos.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), planoHandler.Update)
	planos.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), planoHandler.Delete)

	// Solicitações (protegido)
	solicitacoes := protected.Group("/solicitacoes")
	solicitacaoHandler := NewSolicitacaoHandler(deps.SolicitacaoUC, deps.Validate)
	solicitacoes.Post("/", solicitacaoHandler.Create)
	solicitacoes.Get("/", solicitacaoHandler.List)
	solicitacoes.Get("/:id", solicitacaoHandler.GetByID)
	solicitacoes.Patch("/:id/status", solicitacaoHandler.UpdateStatus)
	solicitacoes.Delete("/:id", solicitacaoHandler.Delete)

	// Credenciadoras e segmentos (protegido; cadastro só para admin)
	credenciadoraHandler := NewCredenciadoraHandler(deps.CredenciadoraUC, deps.Validate)
	credenciadoras := protected.Group("/credenciadoras")
	credenciadoras.Post("/", RequireRole(entity.RoleAdmin), credenciadoraHandler.Create)
	credenciadoras.Get("/", credenciadoraHandler.List)
	credenciadoras.Get("/:id", credenciadoraHandler.GetByID)
	credenciadoras.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccrediting), credenciadoraHandler.Update)
	protected.Get("/segmentos", credenciadoraHandler.ListSegmentos)

	// Painel gerencial (protegido; papéis com visão agregada)
	overviewHandler := NewOverviewHandler(deps.OverviewUC)
	overview := protected.Group("/overview", RequireRole(entity.RoleAdmin, entity.RoleAccrediting, entity.RoleBusiness))
	overview.Get("/", overviewHandler.GetOverview)
	overview.Get("/export/xlsx", overviewHandler.ExportXLSX)
	overview.Get("/export/pdf", overviewHandler.ExportPDF)
}
