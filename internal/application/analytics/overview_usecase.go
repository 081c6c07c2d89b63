// Package analytics orquestra o painel gerencial: contagens, rankings e a
// exportação do relatório em XLSX e PDF.
package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/report"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

const topN = 5

// WorkbookExporter porto de serialização da planilha gerencial em XLSX.
type WorkbookExporter interface {
	Export(p report.Planilha) ([]byte, error)
}

// ReportPDFGenerator porto de geração do relatório gerencial em PDF.
type ReportPDFGenerator interface {
	Generate(p report.Planilha) ([]byte, error)
}

// OverviewUseCase monta a visão gerencial a partir das coleções persistidas.
type OverviewUseCase struct {
	empresaRepo     repository.EmpresaRepository
	funcionarioRepo repository.FuncionarioRepository
	credenciadoRepo repository.CredenciadoRepository
	planoRepo       repository.PlanoRepository
	solicitacaoRepo repository.SolicitacaoRepository
	exporter        WorkbookExporter
	pdfGen          ReportPDFGenerator
}

// NewOverviewUseCase constrói o caso de uso com todos os portos de leitura
// e os geradores de relatório.
func NewOverviewUseCase(
	empresaRepo repository.EmpresaRepository,
	funcionarioRepo repository.FuncionarioRepository,
	credenciadoRepo repository.CredenciadoRepository,
	planoRepo repository.PlanoRepository,
	solicitacaoRepo repository.SolicitacaoRepository,
	exporter WorkbookExporter,
	pdfGen ReportPDFGenerator,
) *OverviewUseCase {
	return &OverviewUseCase{
		empresaRepo:     empresaRepo,
		funcionarioRepo: funcionarioRepo,
		credenciadoRepo: credenciadoRepo,
		planoRepo:       planoRepo,
		solicitacaoRepo: solicitacaoRepo,
		exporter:        exporter,
		pdfGen:          pdfGen,
	}
}

// colecoes é o snapshot das cinco coleções que alimentam o painel.
type colecoes struct {
	empresas     []*entity.Empresa
	funcionarios []*entity.Funcionario
	credenciados []*entity.Credenciado
	planos       []*entity.Plano
	solicitacoes []*entity.Solicitacao
}

// GetOverview devolve contagens e rankings no escopo do ator.
func (uc *OverviewUseCase) GetOverview(actor usecase.Actor) (*dto.OverviewResponse, error) {
	col, err := uc.carregar(actor)
	if err != nil {
		return nil, err
	}

	topEmpresas := report.TopEmpresasPorFuncionarios(col.empresas, topN)
	topCredenciados := report.TopCredenciadosPorFaturamento(col.solicitacoes, col.credenciados, topN)

	resp := &dto.OverviewResponse{
		EmpresasAtivas:     len(col.empresas),
		CredenciadosAtivos: len(col.credenciados),
		FuncionariosAtivos: len(col.funcionarios),
		PlanosAtivos:       len(col.planos),
		ServicosTotais:     len(col.solicitacoes),
	}
	for _, e := range topEmpresas {
		resp.TopEmpresas = append(resp.TopEmpresas, dto.TopEmpresaDTO{
			ID:                 e.ID,
			NomeFantasia:       e.NomeFantasia,
			NumeroFuncionarios: e.NumeroFuncionarios,
		})
	}
	for _, c := range topCredenciados {
		resp.TopCredenciados = append(resp.TopCredenciados, dto.TopCredenciadoDTO{
			ID:           c.Credenciado.ID,
			NomeFantasia: c.Credenciado.NomeFantasia,
			ValorTotal:   c.ValorTotal,
		})
	}
	return resp, nil
}

// ExportXLSX serializa o relatório gerencial em XLSX.
func (uc *OverviewUseCase) ExportXLSX(actor usecase.Actor) (data []byte, filename string, err error) {
	planilha, err := uc.montar(actor)
	if err != nil {
		return nil, "", err
	}
	data, err = uc.exporter.Export(planilha)
	if err != nil {
		return nil, "", fmt.Errorf("overview: exportar xlsx: %w", err)
	}
	return data, nomeArquivo("xlsx"), nil
}

// ExportPDF gera o relatório gerencial em PDF.
func (uc *OverviewUseCase) ExportPDF(actor usecase.Actor) (data []byte, filename string, err error) {
	planilha, err := uc.montar(actor)
	if err != nil {
		return nil, "", err
	}
	data, err = uc.pdfGen.Generate(planilha)
	if err != nil {
		return nil, "", fmt.Errorf("overview: gerar pdf: %w", err)
	}
	return data, nomeArquivo("pdf"), nil
}

func (uc *OverviewUseCase) montar(actor usecase.Actor) (report.Planilha, error) {
	col, err := uc.carregar(actor)
	if err != nil {
		return report.Planilha{}, err
	}
	return report.MontarPlanilha(col.empresas, col.funcionarios, col.credenciados, col.planos, col.solicitacoes), nil
}

// carregar busca as cinco coleções em paralelo (consultas independentes) e
// aplica o escopo de visão do ator sobre o snapshot.
func (uc *OverviewUseCase) carregar(actor usecase.Actor) (colecoes, error) {
	type resultado struct {
		nome string
		fill func(*colecoes)
		err  error
	}
	ch := make(chan resultado, 5)

	go func() {
		list, err := uc.empresaRepo.List(0, 0)
		ch <- resultado{"empresas", func(c *colecoes) { c.empresas = list }, err}
	}()
	go func() {
		list, err := uc.funcionarioRepo.List(0, 0)
		ch <- resultado{"funcionarios", func(c *colecoes) { c.funcionarios = list }, err}
	}()
	go func() {
		list, err := uc.credenciadoRepo.List(0, 0)
		ch <- resultado{"credenciados", func(c *colecoes) { c.credenciados = list }, err}
	}()
	go func() {
		list, err := uc.planoRepo.List(0, 0)
		ch <- resultado{"planos", func(c *colecoes) { c.planos = list }, err}
	}()
	go func() {
		list, err := uc.solicitacaoRepo.List(0, 0)
		ch <- resultado{"solicitacoes", func(c *colecoes) { c.solicitacoes = list }, err}
	}()

	var col colecoes
	for i := 0; i < 5; i++ {
		res := <-ch
		if res.err != nil {
			return colecoes{}, fmt.Errorf("overview: carregar %s: %w", res.nome, res.err)
		}
		res.fill(&col)
	}

	uc.aplicarEscopo(actor, &col)
	return col, nil
}

// aplicarEscopo restringe o snapshot à visão do ator: business vê só a
// própria empresa, accrediting vê só a sua rede, os demais veem tudo.
func (uc *OverviewUseCase) aplicarEscopo(actor usecase.Actor, col *colecoes) {
	switch actor.Role {
	case entity.RoleBusiness:
		empresas := col.empresas[:0:0]
		for _, e := range col.empresas {
			if e.ID == actor.UserID {
				empresas = append(empresas, e)
			}
		}
		col.empresas = empresas
	case entity.RoleAccrediting:
		empresas := col.empresas[:0:0]
		for _, e := range col.empresas {
			if e.AccreditingID == actor.UserID {
				empresas = append(empresas, e)
			}
		}
		col.empresas = empresas

		credenciados := col.credenciados[:0:0]
		for _, c := range col.credenciados {
			if c.AccreditingID == actor.UserID {
				credenciados = append(credenciados, c)
			}
		}
		col.credenciados = credenciados
	default:
		return
	}
	col.funcionarios = report.ScopeFuncionarios(col.funcionarios, col.empresas, actor.Role, actor.UserID)
}

func nomeArquivo(ext string) string {
	return fmt.Sprintf("dados_gerenciais_%s.%s", time.Now().Format("2006-01-02"), ext)
}
