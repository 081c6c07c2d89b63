package usecase

import (
	"time"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
)

// Fakes em memória dos portos de persistência, para exercitar os casos de
// uso sem banco.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeEmpresaRepo struct {
	itens []*entity.Empresa
}

func (r *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	r.itens = append(r.itens, e)
	return nil
}

func (r *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	for _, e := range r.itens {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) {
	for _, e := range r.itens {
		if e.CNPJCAEPF == cnpj {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) Update(e *entity.Empresa) error {
	for i, it := range r.itens {
		if it.ID == e.ID {
			r.itens[i] = e
		}
	}
	return nil
}

func (r *fakeEmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	return r.itens, nil
}

func (r *fakeEmpresaRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Empresa, error) {
	out := []*entity.Empresa{}
	for _, e := range r.itens {
		if e.AccreditingID == accreditingID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmpresaRepo) Delete(id string) error {
	for i, e := range r.itens {
		if e.ID == id {
			r.itens = append(r.itens[:i], r.itens[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeFuncionarioRepo struct {
	itens []*entity.Funcionario
}

func (r *fakeFuncionarioRepo) Create(f *entity.Funcionario) error {
	r.itens = append(r.itens, f)
	return nil
}

func (r *fakeFuncionarioRepo) GetByID(id string) (*entity.Funcionario, error) {
	for _, f := range r.itens {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFuncionarioRepo) GetByCPF(cpf string) (*entity.Funcionario, error) {
	for _, f := range r.itens {
		if f.CPF == cpf && !f.IsDeleted {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFuncionarioRepo) Update(f *entity.Funcionario) error {
	for i, it := range r.itens {
		if it.ID == f.ID {
			r.itens[i] = f
		}
	}
	return nil
}

func (r *fakeFuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	out := []*entity.Funcionario{}
	for _, f := range r.itens {
		if !f.IsDeleted {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFuncionarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Funcionario, error) {
	out := []*entity.Funcionario{}
	for _, f := range r.itens {
		if f.EmpresaID == empresaID && !f.IsDeleted {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFuncionarioRepo) CountByEmpresa(empresaID string) (int, error) {
	list, _ := r.ListByEmpresa(empresaID, 0, 0)
	return len(list), nil
}

func (r *fakeFuncionarioRepo) SoftDelete(id string) error {
	for _, f := range r.itens {
		if f.ID == id {
			now := time.Now()
			f.IsDeleted = true
			f.DeletedAt = &now
		}
	}
	return nil
}

type fakeCredenciadoraRepo struct {
	itens []*entity.Credenciadora
}

func (r *fakeCredenciadoraRepo) Create(c *entity.Credenciadora) error {
	r.itens = append(r.itens, c)
	return nil
}

func (r *fakeCredenciadoraRepo) GetByID(id string) (*entity.Credenciadora, error) {
	for _, c := range r.itens {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCredenciadoraRepo) List(limit, offset int) ([]*entity.Credenciadora, error) {
	return r.itens, nil
}

func (r *fakeCredenciadoraRepo) Update(c *entity.Credenciadora) error {
	for i, it := range r.itens {
		if it.ID == c.ID {
			r.itens[i] = c
		}
	}
	return nil
}

type fakeCredenciadoRepo struct {
	itens []*entity.Credenciado
}

func (r *fakeCredenciadoRepo) Create(c *entity.Credenciado) error {
	r.itens = append(r.itens, c)
	return nil
}

func (r *fakeCredenciadoRepo) GetByID(id string) (*entity.Credenciado, error) {
	for _, c := range r.itens {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCredenciadoRepo) GetByDocumento(tipo, numero string) (*entity.Credenciado, error) {
	for _, c := range r.itens {
		if c.Documento.Tipo == tipo && c.Documento.Numero == numero {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCredenciadoRepo) Update(c *entity.Credenciado) error {
	for i, it := range r.itens {
		if it.ID == c.ID {
			r.itens[i] = c
		}
	}
	return nil
}

func (r *fakeCredenciadoRepo) UpdateImagemURL(id, imagemURL string) error {
	for _, c := range r.itens {
		if c.ID == id {
			c.ImagemURL = imagemURL
		}
	}
	return nil
}

func (r *fakeCredenciadoRepo) List(limit, offset int) ([]*entity.Credenciado, error) {
	return r.itens, nil
}

func (r *fakeCredenciadoRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Credenciado, error) {
	out := []*entity.Credenciado{}
	for _, c := range r.itens {
		if c.AccreditingID == accreditingID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCredenciadoRepo) Delete(id string) error {
	for i, c := range r.itens {
		if c.ID == id {
			r.itens = append(r.itens[:i], r.itens[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeStorage struct {
	salvos map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{salvos: map[string][]byte{}}
}

func (s *fakeStorage) Save(folder, key string, data []byte) (string, error) {
	s.salvos[folder+"/"+key] = data
	return "http://storage.local/" + folder + "/" + key, nil
}

type fakePlanoRepo struct {
	itens []*entity.Plano
}

func (r *fakePlanoRepo) Create(p *entity.Plano) error {
	r.itens = append(r.itens, p)
	return nil
}

func (r *fakePlanoRepo) GetByID(id string) (*entity.Plano, error) {
	for _, p := range r.itens {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanoRepo) Update(p *entity.Plano) error {
	for i, it := range r.itens {
		if it.ID == p.ID {
			r.itens[i] = p
		}
	}
	return nil
}

func (r *fakePlanoRepo) List(limit, offset int) ([]*entity.Plano, error) {
	return r.itens, nil
}

func (r *fakePlanoRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Plano, error) {
	out := []*entity.Plano{}
	for _, p := range r.itens {
		if p.AccreditingID == accreditingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanoRepo) Delete(id string) error {
	for i, p := range r.itens {
		if p.ID == id {
			r.itens = append(r.itens[:i], r.itens[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSolicitacaoRepo struct {
	itens []*entity.Solicitacao
}

func (r *fakeSolicitacaoRepo) Create(s *entity.Solicitacao) error {
	r.itens = append(r.itens, s)
	return nil
}

func (r *fakeSolicitacaoRepo) GetByID(id string) (*entity.Solicitacao, error) {
	for _, s := range r.itens {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSolicitacaoRepo) Update(s *entity.Solicitacao) error {
	for i, it := range r.itens {
		if it.ID == s.ID {
			r.itens[i] = s
		}
	}
	return nil
}

func (r *fakeSolicitacaoRepo) UpdateStatus(id, status string) error {
	for _, s := range r.itens {
		if s.ID == id {
			s.Status = status
			s.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *fakeSolicitacaoRepo) List(limit, offset int) ([]*entity.Solicitacao, error) {
	return r.itens, nil
}

func (r *fakeSolicitacaoRepo) ListByCredenciado(credenciadoID string, limit, offset int) ([]*entity.Solicitacao, error) {
	out := []*entity.Solicitacao{}
	for _, s := range r.itens {
		if s.DonoID == credenciadoID || s.CredenciadoID == credenciadoID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSolicitacaoRepo) Delete(id string) error {
	for i, s := range r.itens {
		if s.ID == id {
			r.itens = append(r.itens[:i], r.itens[i+1:]...)
			return nil
		}
	}
	return nil
}
