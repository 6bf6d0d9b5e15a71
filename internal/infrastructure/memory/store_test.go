package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/memory"
)

var now = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

func TestTagRepo_UnicidadPorTenant(t *testing.T) {
	ctx := context.Background()
	tags := memory.NewStore().Tags()

	require.NoError(t, tags.Create(ctx, &entity.Tag{ID: "t1", TenantID: "a", Name: "VIP"}))

	// Caso 1: mismo nombre en el mismo tenant
	assert.ErrorIs(t, tags.Create(ctx, &entity.Tag{ID: "t2", TenantID: "a", Name: "VIP"}), domain.ErrDuplicate)

	// Caso 2: mismo nombre en otro tenant
	require.NoError(t, tags.Create(ctx, &entity.Tag{ID: "t3", TenantID: "b", Name: "VIP"}))

	// Caso 3: la comparación es exacta
	require.NoError(t, tags.Create(ctx, &entity.Tag{ID: "t4", TenantID: "a", Name: "vip"}))

	// Caso 4: CreateIfAbsent no falla si ya existe
	created, err := tags.CreateIfAbsent(ctx, &entity.Tag{ID: "t5", TenantID: "a", Name: "VIP"})
	require.NoError(t, err)
	assert.False(t, created)

	// Caso 5: GetByID no cruza tenants
	got, err := tags.GetByID(ctx, "b", "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTagRepo_AsignacionIdempotenteYConcurrente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "c1", TenantID: "a", Name: "Ana", CreatedAt: now}))
	require.NoError(t, store.Tags().Create(ctx, &entity.Tag{ID: "t1", TenantID: "a", Name: "VIP"}))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Tags().Assign(ctx, "c1", "t1", now)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, store.Tags().Assignments("c1"))

	// Referencias inexistentes
	_, err := store.Tags().Assign(ctx, "c404", "t1", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Tags().Assign(ctx, "c1", "t404", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err := store.Tags().Unassign(ctx, "c1", "t1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = store.Tags().Unassign(ctx, "c1", "t1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_BorradoEnCascada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "c1", TenantID: "a", Name: "Ana", CreatedAt: now}))
	require.NoError(t, store.Tags().Create(ctx, &entity.Tag{ID: "t1", TenantID: "a", Name: "VIP"}))
	require.NoError(t, store.Tags().Create(ctx, &entity.Tag{ID: "t2", TenantID: "a", Name: "Gold"}))
	_, err := store.Tags().Assign(ctx, "c1", "t1", now)
	require.NoError(t, err)
	_, err = store.Tags().Assign(ctx, "c1", "t2", now)
	require.NoError(t, err)

	require.NoError(t, store.Tags().Delete(ctx, "a", "t1"))
	list, err := store.Tags().ListByClient(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gold", list[0].Name)

	require.NoError(t, store.Clients().Delete(ctx, "a", "c1"))
	assert.Equal(t, 0, store.Tags().Assignments("c1"))

	// Borrar desde otro tenant
	assert.ErrorIs(t, store.Tags().Delete(ctx, "b", "t2"), domain.ErrNotFound)
}

func TestClientRepo_ConsultasDeSugerencias(t *testing.T) {
	ctx := context.Background()
	clients := memory.NewStore().Clients()
	at := func(days int) *time.Time {
		v := now.AddDate(0, 0, -days)
		return &v
	}
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "reciente", TenantID: "a", Name: "R", LastVisitAt: at(10), CreatedAt: now.AddDate(0, -6, 0)}))
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "viejo", TenantID: "a", Name: "V", LastVisitAt: at(200), CreatedAt: now.AddDate(-1, 0, 0)}))
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "medio", TenantID: "a", Name: "M", LastVisitAt: at(100), CreatedAt: now.AddDate(-1, 0, 0)}))
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "nuevo", TenantID: "a", Name: "N", CreatedAt: now.AddDate(0, 0, -1)}))
	require.NoError(t, clients.Create(ctx, &entity.Client{ID: "otro", TenantID: "b", Name: "O", LastVisitAt: at(300), CreatedAt: now}))

	lapsed, err := clients.ListLapsed(ctx, "a", now.AddDate(0, 0, -90), 10)
	require.NoError(t, err)
	require.Len(t, lapsed, 2)
	assert.Equal(t, "viejo", lapsed[0].ID)
	assert.Equal(t, "medio", lapsed[1].ID)

	recent, err := clients.ListCreatedSince(ctx, "a", now.AddDate(0, 0, -7), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "nuevo", recent[0].ID)

	// TouchLastVisit respeta el tenant
	assert.ErrorIs(t, clients.TouchLastVisit(ctx, "b", "nuevo", now), domain.ErrNotFound)
	require.NoError(t, clients.TouchLastVisit(ctx, "a", "nuevo", now))
	got, err := clients.GetByID(ctx, "a", "nuevo")
	require.NoError(t, err)
	require.NotNil(t, got.LastVisitAt)
	assert.True(t, got.LastVisitAt.Equal(now))
}
