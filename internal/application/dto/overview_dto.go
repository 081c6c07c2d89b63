package dto

import "github.com/shopspring/decimal"

// OverviewResponse contagens agregadas e rankings do painel gerencial.
type OverviewResponse struct {
	EmpresasAtivas     int                 `json:"empresas_ativas"`
	CredenciadosAtivos int                 `json:"credenciados_ativos"`
	FuncionariosAtivos int                 `json:"funcionarios_ativos"`
	PlanosAtivos       int                 `json:"planos_ativos"`
	ServicosTotais     int                 `json:"servicos_totais"`
	TopEmpresas        []TopEmpresaDTO     `json:"top_empresas"`
	TopCredenciados    []TopCredenciadoDTO `json:"top_credenciados"`
}

// TopEmpresaDTO linha do ranking de empresas por número de funcionários.
type TopEmpresaDTO struct {
	ID                 string `json:"id"`
	NomeFantasia       string `json:"nome_fantasia"`
	NumeroFuncionarios int    `json:"numero_funcionarios"`
}

// TopCredenciadoDTO linha do ranking de credenciados por faturamento.
type TopCredenciadoDTO struct {
	ID           string          `json:"id"`
	NomeFantasia string          `json:"nome_fantasia"`
	ValorTotal   decimal.Decimal `json:"valor_total"`
}
