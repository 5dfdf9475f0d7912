package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"etalase/internal/catalog"
	"etalase/internal/models"
	"etalase/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteRepository opens a private in-memory database for one test.
func newSQLiteRepository(t *testing.T) *repositories.GORMCatalogRepository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repositories.Open(repositories.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	repo := repositories.NewGORMCatalogRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestCatalogRepositories(t *testing.T) {
	impls := map[string]func(t *testing.T) repositories.CatalogRepository{
		"mock": func(*testing.T) repositories.CatalogRepository { return repositories.NewMockCatalogRepository() },
		"gorm": func(t *testing.T) repositories.CatalogRepository { return newSQLiteRepository(t) },
	}

	for name, newRepo := range impls {
		t.Run(name, func(t *testing.T) {
			t.Run("SeedAndLoad", func(t *testing.T) {
				repo := newRepo(t)

				empty, err := repo.IsEmpty()
				require.NoError(t, err)
				assert.True(t, empty)

				ds := catalog.DefaultDataset()
				require.NoError(t, catalog.Seed(repo, ds))

				empty, err = repo.IsEmpty()
				require.NoError(t, err)
				assert.False(t, empty)

				cat, err := catalog.Load(repo)
				require.NoError(t, err)
				assert.Equal(t, len(ds.Products), cat.Len())

				got := cat.Products()
				for i, p := range ds.Products {
					assert.Equal(t, p.ID, got[i].ID, "catalog order must survive a round trip")
				}

				p, ok := cat.Product("p-01")
				require.True(t, ok)
				require.NotNil(t, p.OriginalPrice)
				assert.Equal(t, 850000.0, *p.OriginalPrice)
				assert.True(t, p.IsBestSeller)
			})

			t.Run("CreateAssignsIDAndPosition", func(t *testing.T) {
				repo := newRepo(t)

				first := &models.Brand{Name: "First"}
				second := &models.Brand{Name: "Second"}
				require.NoError(t, repo.CreateBrand(first))
				require.NoError(t, repo.CreateBrand(second))

				assert.NotEmpty(t, first.ID)
				assert.NotEqual(t, first.ID, second.ID)
				assert.Equal(t, 0, first.Position)
				assert.Equal(t, 1, second.Position)

				brands, err := repo.GetBrands()
				require.NoError(t, err)
				require.Len(t, brands, 2)
				assert.Equal(t, "First", brands[0].Name)
				assert.Equal(t, "Second", brands[1].Name)
			})

			t.Run("DuplicateIDFails", func(t *testing.T) {
				repo := newRepo(t)

				require.NoError(t, repo.CreateCategory(&models.Category{ID: "c1", Name: "One"}))
				err := repo.CreateCategory(&models.Category{ID: "c1", Name: "Again"})
				assert.Error(t, err)
			})
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := repositories.Open("oracle", "dsn")
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog driver")
}
