package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/database"
)

func seedUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Name: "Seller", Email: email, Password: "x"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func TestCreateStore(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "tini@warung.test")

	svc := NewStoreService()
	store, err := svc.CreateStore(context.Background(), user.ID, CreateStoreInput{
		Name:     "Warung Bu Tini",
		Location: "Jl. Melati No. 3",
	})
	require.NoError(t, err)

	assert.Equal(t, "warung-bu-tini", store.Slug)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{5}$`), store.StoreCode)
	assert.Equal(t, user.ID, store.UserID)
}

func TestCreateStoreSlugCollision(t *testing.T) {
	setupDB(t)
	svc := NewStoreService()
	ctx := context.Background()

	first := seedUser(t, "a@warung.test")
	second := seedUser(t, "b@warung.test")

	s1, err := svc.CreateStore(ctx, first.ID, CreateStoreInput{Name: "Warung Bu Tini"})
	require.NoError(t, err)
	s2, err := svc.CreateStore(ctx, second.ID, CreateStoreInput{Name: "Warung Bu Tini"})
	require.NoError(t, err)

	assert.Equal(t, "warung-bu-tini", s1.Slug)
	assert.Equal(t, "warung-bu-tini-1", s2.Slug)
	assert.NotEqual(t, s1.StoreCode, s2.StoreCode)
}

func TestCreateStoreOnePerUser(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "tini@warung.test")

	svc := NewStoreService()
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, user.ID, CreateStoreInput{Name: "Warung Bu Tini"})
	require.NoError(t, err)

	_, err = svc.CreateStore(ctx, user.ID, CreateStoreInput{Name: "Warung Kedua"})
	assert.ErrorIs(t, err, ErrStoreExists)
}

func TestUpdateStoreKeepsSlugAndCode(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "tini@warung.test")

	svc := NewStoreService()
	created, err := svc.CreateStore(context.Background(), user.ID, CreateStoreInput{Name: "Warung Bu Tini"})
	require.NoError(t, err)

	updated, err := svc.UpdateStore(user.ID, CreateStoreInput{Name: "Warung Tini Baru", Location: "Pindah"})
	require.NoError(t, err)

	assert.Equal(t, "Warung Tini Baru", updated.Name)
	assert.Equal(t, created.Slug, updated.Slug, "slug is immutable")
	assert.Equal(t, created.StoreCode, updated.StoreCode, "store code is immutable")
}

func TestMyStoreWithoutStore(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "kosong@warung.test")

	svc := NewStoreService()
	_, err := svc.MyStore(user.ID)
	assert.ErrorIs(t, err, ErrNoStore)
}
