package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// BinaryStorage porto de armazenamento de binários (logos). A implementação
// vive em infrastructure.
type BinaryStorage interface {
	Save(folder, key string, data []byte) (url string, err error)
}

// CredenciadoUseCase aplica regras de negócio para credenciados.
type CredenciadoUseCase struct {
	repo       repository.CredenciadoRepository
	credoraRep repository.CredenciadoraRepository
	authUC     *auth.AuthUseCase
	storage    BinaryStorage
}

// NewCredenciadoUseCase constrói o caso de uso com os portos de persistência
// e armazenamento.
func NewCredenciadoUseCase(
	repo repository.CredenciadoRepository,
	credoraRep repository.CredenciadoraRepository,
	authUC *auth.AuthUseCase,
	storage BinaryStorage,
) *CredenciadoUseCase {
	return &CredenciadoUseCase{repo: repo, credoraRep: credoraRep, authUC: authUC, storage: storage}
}

// Create cadastra um credenciado. Provisiona a identidade de acesso e grava
// o documento sob o mesmo id. O documento fiscal vira a variante etiquetada
// correspondente ao tipo declarado, já na forma mascarada. Se logo vier
// preenchido, o binário é salvo antes de gravar o documento; falha no upload
// aborta o cadastro, podendo deixar a identidade órfã.
func (uc *CredenciadoUseCase) Create(actor Actor, in dto.CreateCredenciadoRequest, logo []byte) (*dto.CredenciadoResponse, error) {
	documento := montarDocumento(in.DocumentoTipo, in.CNPJ, in.CPF, in.CEI, in.CAEPF)
	existing, _ := uc.repo.GetByDocumento(documento.Tipo, documento.Numero)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	userID, err := uc.authUC.ProvisionLogin(in.EmailAcesso, in.NomeFantasia, entity.RoleAccredited)
	if err != nil {
		return nil, err
	}

	imagemURL := ""
	if len(logo) > 0 {
		imagemURL, err = uc.storage.Save("logos", chaveLogo(documento.Numero), logo)
		if err != nil {
			return nil, err
		}
	}

	accreditingID, accreditingName := uc.resolveAccrediting(actor)
	now := time.Now()
	credenciado := &entity.Credenciado{
		ID:              userID,
		TipoPessoa:      in.TipoPessoa,
		RazaoSocial:     in.RazaoSocial,
		NomeFantasia:    in.NomeFantasia,
		EmailAcesso:     in.EmailAcesso,
		Documento:       documento,
		Endereco:        in.Endereco,
		CEP:             docfiscal.MaskCEP(in.CEP),
		Telefone:        docfiscal.MaskTelefone(in.Telefone),
		ContatoRH:       toContatoPtr(in.ContatoRH),
		SegmentoID:      in.SegmentoID,
		ImagemURL:       imagemURL,
		AccreditingID:   accreditingID,
		AccreditingName: accreditingName,
		PlanoID:         in.PlanoID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(credenciado); err != nil {
		return nil, err
	}
	return entityToCredenciadoResponse(credenciado), nil
}

// GetByID obtém um credenciado por ID.
func (uc *CredenciadoUseCase) GetByID(id string) (*dto.CredenciadoResponse, error) {
	credenciado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if credenciado == nil {
		return nil, nil
	}
	return entityToCredenciadoResponse(credenciado), nil
}

// List lista credenciados no escopo do ator: credenciadoras veem apenas a
// própria rede.
func (uc *CredenciadoUseCase) List(actor Actor, limit, offset int) (*dto.CredenciadoListResponse, error) {
	var (
		list []*entity.Credenciado
		err  error
	)
	if actor.Role == entity.RoleAccrediting {
		list, err = uc.repo.ListByAccrediting(actor.UserID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CredenciadoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCredenciadoResponse(c))
	}
	return &dto.CredenciadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update sobrescreve o documento do credenciado.
func (uc *CredenciadoUseCase) Update(id string, in dto.UpdateCredenciadoRequest) (*dto.CredenciadoResponse, error) {
	credenciado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if credenciado == nil {
		return nil, domain.ErrNotFound
	}
	credenciado.TipoPessoa = in.TipoPessoa
	credenciado.RazaoSocial = in.RazaoSocial
	credenciado.NomeFantasia = in.NomeFantasia
	credenciado.Documento = montarDocumento(in.DocumentoTipo, in.CNPJ, in.CPF, in.CEI, in.CAEPF)
	credenciado.Endereco = in.Endereco
	credenciado.CEP = docfiscal.MaskCEP(in.CEP)
	credenciado.Telefone = docfiscal.MaskTelefone(in.Telefone)
	credenciado.ContatoRH = toContatoPtr(in.ContatoRH)
	credenciado.SegmentoID = in.SegmentoID
	credenciado.PlanoID = in.PlanoID
	credenciado.UpdatedAt = time.Now()
	if err := uc.repo.Update(credenciado); err != nil {
		return nil, err
	}
	return entityToCredenciadoResponse(credenciado), nil
}

// UploadLogo salva o binário do logo e atualiza a URL no documento.
func (uc *CredenciadoUseCase) UploadLogo(id string, logo []byte) (string, error) {
	credenciado, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if credenciado == nil {
		return "", domain.ErrNotFound
	}
	url, err := uc.storage.Save("logos", chaveLogo(credenciado.Documento.Numero), logo)
	if err != nil {
		return "", err
	}
	if err := uc.repo.UpdateImagemURL(id, url); err != nil {
		return "", err
	}
	return url, nil
}

// Delete remove o credenciado definitivamente.
func (uc *CredenciadoUseCase) Delete(id string) error {
	credenciado, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if credenciado == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *CredenciadoUseCase) resolveAccrediting(actor Actor) (id, nome string) {
	if actor.Role != entity.RoleAccrediting {
		return "", ""
	}
	credora, err := uc.credoraRep.GetByID(actor.UserID)
	if err != nil || credora == nil {
		return actor.UserID, ""
	}
	return actor.UserID, credora.NomeFantasia
}

// montarDocumento escolhe o campo declarado no tipo e devolve a variante já
// mascarada. A regra de struct do validador garante que só o campo declarado
// vem preenchido.
func montarDocumento(tipo, cnpj, cpf, cei, caepf string) entity.Documento {
	switch tipo {
	case entity.DocumentoCNPJ:
		return entity.Documento{Tipo: tipo, Numero: docfiscal.MaskCNPJ(cnpj)}
	case entity.DocumentoCPF:
		return entity.Documento{Tipo: tipo, Numero: docfiscal.MaskCPF(cpf)}
	case entity.DocumentoCEI:
		return entity.Documento{Tipo: tipo, Numero: docfiscal.MaskCEI(cei)}
	case entity.DocumentoCAEPF:
		return entity.Documento{Tipo: tipo, Numero: docfiscal.MaskCAEPF(caepf)}
	default:
		return entity.Documento{Tipo: tipo}
	}
}

// chaveLogo deriva a chave de armazenamento dos dígitos crus do documento.
func chaveLogo(numero string) string {
	var b strings.Builder
	for _, r := range numero {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toContatoPtr(c *dto.ContatoDTO) *entity.Contato {
	if c == nil {
		return nil
	}
	contato := toContato(*c)
	return &contato
}

func entityToCredenciadoResponse(c *entity.Credenciado) *dto.CredenciadoResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CredenciadoResponse{
		ID:              c.ID,
		TipoPessoa:      c.TipoPessoa,
		DocumentoTipo:   c.Documento.Tipo,
		Documento:       c.Documento.Numero,
		RazaoSocial:     c.RazaoSocial,
		NomeFantasia:    c.NomeFantasia,
		EmailAcesso:     c.EmailAcesso,
		Endereco:        c.Endereco,
		CEP:             c.CEP,
		Telefone:        c.Telefone,
		SegmentoID:      c.SegmentoID,
		ImagemURL:       c.ImagemURL,
		AccreditingID:   c.AccreditingID,
		AccreditingName: c.AccreditingName,
		PlanoID:         c.PlanoID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.ContatoRH != nil {
		contato := toContatoDTO(*c.ContatoRH)
		resp.ContatoRH = &contato
	}
	return resp
}
