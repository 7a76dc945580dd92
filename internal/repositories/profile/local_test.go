package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/localstore"
	profilerepo "github.com/questbloom/questbloom-api/internal/repositories/profile"
	"github.com/questbloom/questbloom-api/internal/testutils"
)

func newLocalRepo(t *testing.T) profilerepo.Repository {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	repo, err := profilerepo.NewLocalRepository(&profilerepo.LocalConfig{Store: store})
	require.NoError(t, err)
	return repo
}

func TestLocalSaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newLocalRepo(t)
	prof := testutils.CreateTestProfile("guest-user")

	require.NoError(t, repo.Save(ctx, profilerepo.SaveInput{PlayerID: "guest-user", Profile: prof}))

	out, err := repo.Get(ctx, profilerepo.GetInput{PlayerID: "guest-user"})
	require.NoError(t, err)
	assert.Equal(t, prof, out.Profile)
}

func TestLocalGetMissing(t *testing.T) {
	repo := newLocalRepo(t)

	_, err := repo.Get(context.Background(), profilerepo.GetInput{PlayerID: "guest-user"})
	assert.True(t, errors.IsNotFound(err))
}
