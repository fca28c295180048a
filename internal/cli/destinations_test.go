package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/travelbook/internal/common"
	"github.com/dmitrijs2005/travelbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedIn(t *testing.T, lines ...string) *testEnv {
	t.Helper()
	e := newTestEnv(t, lines...)
	e.register(t, "a@x.com", "pw1", "Ann")
	e.loginAs(t, "a@x.com", "pw1")
	return e
}

func TestAdd_CreatesAndReloadsView(t *testing.T) {
	e := loggedIn(t,
		"Paris",         // title
		"City of light", // description
		"",              // end of description
		"p.jpg",         // image
	)

	require.NoError(t, e.app.Add(context.Background()))
	assert.Contains(t, e.out.String(), "Added Paris (d1)")

	require.Len(t, e.app.view, 1)
	got := e.app.view[0]
	assert.Equal(t, "d1", got.ID)
	assert.Equal(t, "Paris", got.Title)
	assert.Equal(t, "City of light", got.Description)
	assert.Equal(t, "p.jpg", got.ImageURL)
	assert.Equal(t, "a@x.com", got.UserID)
}

func TestAdd_TitleRequired(t *testing.T) {
	e := loggedIn(t, "")

	err := e.app.Add(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, e.app.view)
}

func TestAdd_NotLoggedIn(t *testing.T) {
	e := newTestEnv(t, "Paris")

	err := e.app.Add(context.Background())
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	assert.Contains(t, e.out.String(), "Please log in first")
}

func TestListAndSearch(t *testing.T) {
	e := loggedIn(t)
	ctx := context.Background()
	_, err := e.repo.Create(ctx, "a@x.com", "Paris", "City of light", "")
	require.NoError(t, err)
	_, err = e.repo.Create(ctx, "a@x.com", "Oslo", "Fjords", "")
	require.NoError(t, err)
	_, err = e.repo.Create(ctx, "b@x.com", "Rome", "light", "")
	require.NoError(t, err)

	require.NoError(t, e.app.List(ctx))
	assert.Contains(t, e.out.String(), "d1  Paris")
	assert.Contains(t, e.out.String(), "d2  Oslo")
	assert.NotContains(t, e.out.String(), "Rome")
	assert.Len(t, e.app.view, 2)

	e.out.Reset()
	require.NoError(t, e.app.Search(ctx, "LIGHT"))
	assert.Equal(t, "d1  Paris\n", e.out.String())

	e.out.Reset()
	require.NoError(t, e.app.Search(ctx, "tokyo"))
	assert.Equal(t, "No destinations.\n", e.out.String())
}

func TestShow_ByIDAndPrefix(t *testing.T) {
	e := loggedIn(t)
	ctx := context.Background()
	_, err := e.repo.Create(ctx, "a@x.com", "Paris", "City of light", "p.jpg")
	require.NoError(t, err)
	require.NoError(t, e.app.reloadView(ctx))

	require.NoError(t, e.app.Show(ctx, "d1"))
	out := e.out.String()
	assert.Contains(t, out, "ID:          d1")
	assert.Contains(t, out, "Title:       Paris")
	assert.Contains(t, out, "Description: City of light")
	assert.Contains(t, out, "Image:       p.jpg")
	assert.Contains(t, out, "Created:")

	e.out.Reset()
	require.NoError(t, e.app.Show(ctx, "d"))
	assert.Contains(t, e.out.String(), "Title:       Paris")
}

func TestLookup_AmbiguousPrefix(t *testing.T) {
	e := loggedIn(t)
	ctx := context.Background()
	for _, title := range []string{"A", "B"} {
		_, err := e.repo.Create(ctx, "a@x.com", title, "", "")
		require.NoError(t, err)
	}
	require.NoError(t, e.app.reloadView(ctx))

	_, err := e.app.lookup(ctx, "d")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = e.app.lookup(ctx, "")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestOtherUsersRecordsAreOutOfReach(t *testing.T) {
	e := loggedIn(t, "y")
	ctx := context.Background()
	foreign, err := e.repo.Create(ctx, "b@x.com", "Rome", "", "")
	require.NoError(t, err)
	require.NoError(t, e.app.reloadView(ctx))

	require.ErrorIs(t, e.app.Show(ctx, foreign.ID), common.ErrorNotFound)
	require.ErrorIs(t, e.app.Edit(ctx, foreign.ID), common.ErrorNotFound)
	require.ErrorIs(t, e.app.Delete(ctx, foreign.ID), common.ErrorNotFound)

	still, err := e.repo.Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rome", still.Title)
}

func TestEdit_OnlyChangesAnsweredFields(t *testing.T) {
	e := loggedIn(t,
		"X", // title
		"",  // description: keep
		"",  // image: keep
	)
	ctx := context.Background()
	before, err := e.repo.Create(ctx, "a@x.com", "Paris", "City of light", "p.jpg")
	require.NoError(t, err)
	require.NoError(t, e.app.reloadView(ctx))

	require.NoError(t, e.app.Edit(ctx, before.ID))

	after, err := e.repo.Get(ctx, before.ID)
	require.NoError(t, err)

	want := before
	want.Title = "X"
	assert.Equal(t, want, after)
	assert.Equal(t, []models.Destination{after}, e.app.view)
}

func TestEdit_NothingChanged(t *testing.T) {
	e := loggedIn(t, "", "", "")
	ctx := context.Background()
	d, err := e.repo.Create(ctx, "a@x.com", "Paris", "", "")
	require.NoError(t, err)

	require.NoError(t, e.app.Edit(ctx, d.ID))
	assert.Contains(t, e.out.String(), "Nothing changed.")
}

func TestDelete_ConfirmAndCancel(t *testing.T) {
	e := loggedIn(t, "n", "y")
	ctx := context.Background()
	d, err := e.repo.Create(ctx, "a@x.com", "Paris", "", "")
	require.NoError(t, err)
	require.NoError(t, e.app.reloadView(ctx))

	require.NoError(t, e.app.Delete(ctx, d.ID))
	assert.Contains(t, e.out.String(), "Cancelled.")
	assert.Len(t, e.app.view, 1)

	require.NoError(t, e.app.Delete(ctx, d.ID))
	assert.Contains(t, e.out.String(), "Deleted Paris")
	assert.Empty(t, e.app.view)

	_, err = e.repo.Get(ctx, d.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
