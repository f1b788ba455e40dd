package category

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/category"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)            {}
func (m *mockLogger) Info(msg string, args ...any)             {}
func (m *mockLogger) Warn(msg string, args ...any)             {}
func (m *mockLogger) Error(msg string, args ...any)            {}
func (m *mockLogger) With(args ...any) types.Logger          { return m }
func (m *mockLogger) WithError(err error) types.Logger       { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func newTestService() (*Service, *Store) {
	s := NewStore()
	return NewService(s, &mockLogger{}), s
}

func TestStore_FindByName(t *testing.T) {
	s := NewStore()
	_, err := s.Save(domain.New("Work", "", ""))
	require.NoError(t, err)

	found, ok := s.FindByName("Work")
	require.True(t, ok)
	assert.Equal(t, "Work", found.Name)

	_, ok = s.FindByName("work")
	assert.False(t, ok, "name lookup is case-sensitive")

	_, ok = s.FindByName("   ")
	assert.False(t, ok)
	assert.True(t, s.ExistsByName("Work"))
	assert.False(t, s.ExistsByName(""))
}

func TestService_CreateCategory(t *testing.T) {
	svc, s := newTestService()

	created, err := svc.CreateCategory(domain.New("Work", "Job stuff", "#3498db"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, s.Count())

	_, err = svc.CreateCategory(domain.New("Work", "", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
	assert.Equal(t, "Category already exists: Work", err.Error())
	assert.Equal(t, 1, s.Count())
}

func TestService_CreateCategory_Invalid(t *testing.T) {
	svc, s := newTestService()

	_, err := svc.CreateCategory(domain.New("", "", "red"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{
		"Category name is required and cannot be empty",
		"Category color must be in hex format (#RRGGBB), got: red",
	}, appErr.Reasons)

	_, err = svc.CreateCategory(nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, 0, s.Count())
}

func TestService_CreateCategory_ConcurrentSameName(t *testing.T) {
	svc, s := newTestService()

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CreateCategory(domain.New("Work", "", "")); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, 1, s.Count())
}

func TestService_UpdateCategory(t *testing.T) {
	svc, _ := newTestService()

	work, err := svc.CreateCategory(domain.New("Work", "", ""))
	require.NoError(t, err)
	home, err := svc.CreateCategory(domain.New("Home", "", ""))
	require.NoError(t, err)

	t.Run("keeps own name", func(t *testing.T) {
		work.SetDescription("updated")
		updated, err := svc.UpdateCategory(work)
		require.NoError(t, err)
		assert.Equal(t, "updated", updated.Description)
	})

	t.Run("rejects name held by another", func(t *testing.T) {
		home.SetName("Work")
		_, err := svc.UpdateCategory(home)
		assert.ErrorIs(t, err, apperr.ErrDuplicate)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		ghost := domain.New("Ghost", "", "")
		_, err := svc.UpdateCategory(ghost)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("rejects invalid color", func(t *testing.T) {
		fresh, err := svc.GetCategoryByID(work.ID)
		require.NoError(t, err)
		fresh.SetColor("blue")
		_, err = svc.UpdateCategory(fresh)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestService_UpdateCategory_ConcurrentDeleteStaysDeleted(t *testing.T) {
	svc, s := newTestService()

	for i := 0; i < 500; i++ {
		created, err := svc.CreateCategory(domain.New(fmt.Sprintf("Work %d", i), "", ""))
		require.NoError(t, err)
		created.SetDescription("renamed")

		var (
			wg        sync.WaitGroup
			updateErr error
			deleteErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, updateErr = svc.UpdateCategory(created)
		}()
		go func() {
			defer wg.Done()
			_, deleteErr = svc.DeleteCategory(created.ID)
		}()
		wg.Wait()

		require.NoError(t, deleteErr)
		if updateErr != nil {
			assert.ErrorIs(t, updateErr, apperr.ErrNotFound)
		}
		require.False(t, s.ExistsByID(created.ID), "round %d: deleted category came back", i)
	}
}

func TestService_Lookups(t *testing.T) {
	svc, _ := newTestService()
	work, err := svc.CreateCategory(domain.New("Work", "", ""))
	require.NoError(t, err)

	got, err := svc.GetCategoryByID(work.ID)
	require.NoError(t, err)
	assert.Equal(t, work.Name, got.Name)

	_, err = svc.GetCategoryByID("missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Category not found with ID: missing", err.Error())

	_, err = svc.GetCategoryByID("  ")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	got, err = svc.GetCategoryByName("Work")
	require.NoError(t, err)
	assert.Equal(t, work.ID, got.ID)

	_, err = svc.GetCategoryByName("Nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.GetCategoryByName("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	assert.True(t, svc.ExistsByName("Work"))
	assert.False(t, svc.ExistsByName(""))
	assert.Len(t, svc.GetAllCategories(), 1)
	assert.Equal(t, 1, svc.GetTotalCount())
}

func TestService_DeleteCategory(t *testing.T) {
	svc, s := newTestService()
	work, err := svc.CreateCategory(domain.New("Work", "", ""))
	require.NoError(t, err)

	deleted, err := svc.DeleteCategory(work.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", deleted.Name)
	assert.Equal(t, 0, s.Count())

	_, err = svc.DeleteCategory(work.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.DeleteCategory("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestModule_Handlers(t *testing.T) {
	m := NewModule(NewStore(), &mockLogger{})
	ctx := context.Background()

	resp, err := m.createCategory(ctx, CreateCategoryRequest{Name: "Work", Color: "#112233"}, nil)
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Category)
	id := resp.Category.ID

	dup, err := m.createCategory(ctx, CreateCategoryRequest{Name: "Work"}, nil)
	require.NoError(t, err)
	require.NotNil(t, dup.Error)
	assert.Equal(t, apperr.KindDuplicate, dup.Error.Kind)

	byName, err := m.getCategory(ctx, GetCategoryRequest{Name: "Work"}, nil)
	require.NoError(t, err)
	assert.Equal(t, id, byName.Category.ID)

	newName := "Office"
	updated, err := m.updateCategory(ctx, UpdateCategoryRequest{CategoryID: id, Name: &newName}, nil)
	require.NoError(t, err)
	require.Nil(t, updated.Error)
	assert.Equal(t, "Office", updated.Category.Name)
	assert.Equal(t, "#112233", updated.Category.Color)

	exists, err := m.categoryExists(ctx, CategoryExistsRequest{Name: "Office"}, nil)
	require.NoError(t, err)
	assert.True(t, exists.Exists)

	list, err := m.listCategories(ctx, ListCategoriesRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	del, err := m.deleteCategory(ctx, DeleteCategoryRequest{CategoryID: id}, nil)
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	missing, err := m.getCategory(ctx, GetCategoryRequest{CategoryID: id}, nil)
	require.NoError(t, err)
	require.NotNil(t, missing.Error)
	assert.ErrorIs(t, missing.Error.Err(), apperr.ErrNotFound)
}

func TestModule_SeedDefaults(t *testing.T) {
	m := NewModule(NewStore(), &mockLogger{})
	m.SeedDefaults()
	m.SeedDefaults()

	assert.Equal(t, len(defaultCategories), m.Service().GetTotalCount())
	assert.True(t, m.Health(context.Background()).Healthy)
}
