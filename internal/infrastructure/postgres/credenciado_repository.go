package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que CredenciadoRepo implementa repository.CredenciadoRepository.
var _ repository.CredenciadoRepository = (*CredenciadoRepo)(nil)

// CredenciadoRepo implementação do porto CredenciadoRepository sobre
// PostgreSQL. A variante de documento é persistida como par (tipo, numero).
type CredenciadoRepo struct {
	pool *pgxpool.Pool
}

// NewCredenciadoRepository constrói o adaptador de persistência de
// credenciados.
func NewCredenciadoRepository(pool *pgxpool.Pool) *CredenciadoRepo {
	return &CredenciadoRepo{pool: pool}
}

const credenciadoColumns = `
	id, tipo_pessoa, razao_social, nome_fantasia, email_acesso,
	documento_tipo, documento_numero, endereco, cep, telefone,
	contato_rh_nome, contato_rh_email, contato_rh_telefone,
	segmento_id, imagem_url, accrediting_id, accrediting_name, plano_id,
	created_at, updated_at`

// Create persiste um novo credenciado sob o id da identidade provisionada.
func (r *CredenciadoRepo) Create(c *entity.Credenciado) error {
	query := `
		INSERT INTO credenciados (` + credenciadoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	rhNome, rhEmail, rhTel := contatoColunas(c.ContatoRH)
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.TipoPessoa, c.RazaoSocial, c.NomeFantasia, c.EmailAcesso,
		c.Documento.Tipo, c.Documento.Numero, c.Endereco, c.CEP, c.Telefone,
		rhNome, rhEmail, rhTel,
		c.SegmentoID, c.ImagemURL, c.AccreditingID, c.AccreditingName, c.PlanoID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert credenciado: %w", err)
	}
	return nil
}

// GetByID obtém um credenciado por ID.
func (r *CredenciadoRepo) GetByID(id string) (*entity.Credenciado, error) {
	query := `SELECT ` + credenciadoColumns + ` FROM credenciados WHERE id = $1`
	c, err := scanCredenciado(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciado: %w", err)
	}
	return c, nil
}

// GetByDocumento obtém um credenciado pelo par (tipo, numero mascarado).
func (r *CredenciadoRepo) GetByDocumento(tipo, numero string) (*entity.Credenciado, error) {
	query := `SELECT ` + credenciadoColumns + ` FROM credenciados WHERE documento_tipo = $1 AND documento_numero = $2`
	c, err := scanCredenciado(r.pool.QueryRow(context.Background(), query, tipo, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciado by documento: %w", err)
	}
	return c, nil
}

// Update sobrescreve o documento do credenciado.
func (r *CredenciadoRepo) Update(c *entity.Credenciado) error {
	query := `
		UPDATE credenciados SET
			tipo_pessoa = $2, razao_social = $3, nome_fantasia = $4,
			documento_tipo = $5, documento_numero = $6, endereco = $7, cep = $8,
			telefone = $9, contato_rh_nome = $10, contato_rh_email = $11,
			contato_rh_telefone = $12, segmento_id = $13, plano_id = $14, updated_at = $15
		WHERE id = $1`
	rhNome, rhEmail, rhTel := contatoColunas(c.ContatoRH)
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.TipoPessoa, c.RazaoSocial, c.NomeFantasia,
		c.Documento.Tipo, c.Documento.Numero, c.Endereco, c.CEP,
		c.Telefone, rhNome, rhEmail,
		rhTel, c.SegmentoID, c.PlanoID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update credenciado: %w", err)
	}
	return nil
}

// UpdateImagemURL troca apenas a URL do logo.
func (r *CredenciadoRepo) UpdateImagemURL(id, imagemURL string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE credenciados SET imagem_url = $2, updated_at = now() WHERE id = $1`, id, imagemURL)
	if err != nil {
		return fmt.Errorf("update imagem credenciado: %w", err)
	}
	return nil
}

// List devolve credenciados ordenados por criação. Limit zero devolve todos.
func (r *CredenciadoRepo) List(limit, offset int) ([]*entity.Credenciado, error) {
	return r.list(`SELECT `+credenciadoColumns+` FROM credenciados ORDER BY created_at DESC`, nil, limit, offset)
}

// ListByAccrediting devolve os credenciados da rede de uma credenciadora.
func (r *CredenciadoRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Credenciado, error) {
	query := `SELECT ` + credenciadoColumns + ` FROM credenciados WHERE accrediting_id = $1 ORDER BY created_at DESC`
	return r.list(query, []any{accreditingID}, limit, offset)
}

// Delete remove um credenciado por ID.
func (r *CredenciadoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM credenciados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete credenciado: %w", err)
	}
	return nil
}

func (r *CredenciadoRepo) list(query string, args []any, limit, offset int) ([]*entity.Credenciado, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credenciados: %w", err)
	}
	defer rows.Close()

	var list []*entity.Credenciado
	for rows.Next() {
		c, err := scanCredenciado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credenciado: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// contatoColunas achata o contato opcional em três colunas anuláveis.
func contatoColunas(c *entity.Contato) (nome, email, telefone *string) {
	if c == nil {
		return nil, nil, nil
	}
	return &c.Nome, &c.Email, &c.Telefone
}

func scanCredenciado(row rowScanner) (*entity.Credenciado, error) {
	var (
		c                   entity.Credenciado
		rhNome, rhEmail, rhTel *string
	)
	err := row.Scan(
		&c.ID, &c.TipoPessoa, &c.RazaoSocial, &c.NomeFantasia, &c.EmailAcesso,
		&c.Documento.Tipo, &c.Documento.Numero, &c.Endereco, &c.CEP, &c.Telefone,
		&rhNome, &rhEmail, &rhTel,
		&c.SegmentoID, &c.ImagemURL, &c.AccreditingID, &c.AccreditingName, &c.PlanoID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rhNome != nil || rhEmail != nil || rhTel != nil {
		c.ContatoRH = &entity.Contato{}
		if rhNome != nil {
			c.ContatoRH.Nome = *rhNome
		}
		if rhEmail != nil {
			c.ContatoRH.Email = *rhEmail
		}
		if rhTel != nil {
			c.ContatoRH.Telefone = *rhTel
		}
	}
	return &c, nil
}
