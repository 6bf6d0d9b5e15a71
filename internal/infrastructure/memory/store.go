// Package memory implementa los puertos de persistencia en memoria. Respeta las mismas
// restricciones de unicidad que el esquema PostgreSQL (tags por (tenant, nombre) y
// asignaciones por (cliente, tag)). Se usa en tests y con DB_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

type assignmentKey struct {
	clientID string
	tagID    string
}

// Store contenedor de datos compartido por todos los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	clients     map[string]*entity.Client
	clientOrder []string
	tags        map[string]*entity.Tag
	tagOrder    []string
	assignments map[assignmentKey]entity.TagAssignment
	sales       map[string]*entity.Sale
	waivers     map[string]*entity.Waiver
	tenants     map[string]*entity.Tenant
	tenantOrder []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		clients:     make(map[string]*entity.Client),
		tags:        make(map[string]*entity.Tag),
		assignments: make(map[assignmentKey]entity.TagAssignment),
		sales:       make(map[string]*entity.Sale),
		waivers:     make(map[string]*entity.Waiver),
		tenants:     make(map[string]*entity.Tenant),
	}
}

// Clients devuelve el repositorio de clientes.
func (s *Store) Clients() *ClientRepo { return &ClientRepo{s: s} }

// Tags devuelve el repositorio de tags y asignaciones.
func (s *Store) Tags() *TagRepo { return &TagRepo{s: s} }

// Sales devuelve el repositorio de ventas.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{s: s} }

// Waivers devuelve el repositorio de consentimientos.
func (s *Store) Waivers() *WaiverRepo { return &WaiverRepo{s: s} }

// Tenants devuelve el repositorio de tenants.
func (s *Store) Tenants() *TenantRepo { return &TenantRepo{s: s} }

// PutTenant inserta o reemplaza un tenant (los tenants los crea el alta de suscripción,
// fuera de esta API).
func (s *Store) PutTenant(t *entity.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[t.ID]; !ok {
		s.tenantOrder = append(s.tenantOrder, t.ID)
	}
	cp := *t
	s.tenants[t.ID] = &cp
}

// RunSale ejecuta fn con los repositorios del store. No hay rollback en memoria:
// si fn falla, lo ya escrito permanece.
func (s *Store) RunSale(ctx context.Context, fn func(sales repository.SaleRepository, clients repository.ClientRepository) error) error {
	return fn(s.Sales(), s.Clients())
}

func copyClient(c *entity.Client) *entity.Client {
	cp := *c
	if c.Birthday != nil {
		b := *c.Birthday
		cp.Birthday = &b
	}
	if c.LastVisitAt != nil {
		v := *c.LastVisitAt
		cp.LastVisitAt = &v
	}
	return &cp
}

func copyTag(t *entity.Tag) *entity.Tag {
	cp := *t
	return &cp
}
