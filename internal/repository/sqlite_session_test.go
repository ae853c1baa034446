package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/mailforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_GetNotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "job-application")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_SaveValuesThenEmail(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	values := map[string]string{"recipientName": "Sarah", "tone": "formal"}
	require.NoError(t, repo.SaveValues(ctx, "professional-business", values))
	require.NoError(t, repo.SaveEmail(ctx, "professional-business", "Subject: Hi\n\nHello"))

	s, err := repo.Get(ctx, "professional-business")
	require.NoError(t, err)
	assert.Equal(t, "professional-business", s.TemplateID)
	assert.Equal(t, values, s.Values)
	assert.Equal(t, "Subject: Hi\n\nHello", s.GeneratedEmail)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestSessionRepo_SaveEmailKeepsValues(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveEmail(ctx, "cold-outreach", "first"))
	s, err := repo.Get(ctx, "cold-outreach")
	require.NoError(t, err)
	assert.Empty(t, s.Values)
	assert.Equal(t, "first", s.GeneratedEmail)

	require.NoError(t, repo.SaveValues(ctx, "cold-outreach", map[string]string{"senderName": "Alex"}))
	s, err = repo.Get(ctx, "cold-outreach")
	require.NoError(t, err)
	assert.Equal(t, "first", s.GeneratedEmail, "saving values must not clear the email")
	assert.Equal(t, "Alex", s.Values["senderName"])

	require.NoError(t, repo.SaveValues(ctx, "cold-outreach", map[string]string{"senderName": "Jordan"}))
	s, err = repo.Get(ctx, "cold-outreach")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"senderName": "Jordan"}, s.Values)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveEmail(ctx, "a", "x"))
	require.NoError(t, repo.SaveEmail(ctx, "b", "y"))

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Get(ctx, "b")
	assert.NoError(t, err)

	// Deleting a missing session is not an error.
	assert.NoError(t, repo.Delete(ctx, "missing"))
}

func TestSessionRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.SaveValues(ctx, id, map[string]string{"k": id}))
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
