package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmmj/cafe-inventory/internal/model"
)

func TestPreferencesGetDefaultsToDisabled(t *testing.T) {
	svc := NewPreferencesService(newStubPreferencesRepo())

	pref, err := svc.Get(context.Background(), "jess@cafe.test")

	require.NoError(t, err)
	assert.Equal(t, "jess@cafe.test", pref.Email)
	assert.False(t, pref.EmailNotifications)
}

func TestPreferencesSetCreatesThenUpdates(t *testing.T) {
	repo := newStubPreferencesRepo()
	svc := NewPreferencesService(repo)

	pref, err := svc.Set(context.Background(), "jess@cafe.test", true)
	require.NoError(t, err)
	assert.True(t, pref.EmailNotifications)
	assert.True(t, repo.prefs["jess@cafe.test"].EmailNotifications)

	pref, err = svc.Set(context.Background(), "jess@cafe.test", false)
	require.NoError(t, err)
	assert.False(t, pref.EmailNotifications)
	assert.False(t, repo.prefs["jess@cafe.test"].EmailNotifications)
}

func TestPreferencesGetExisting(t *testing.T) {
	repo := newStubPreferencesRepo()
	repo.prefs["jess@cafe.test"] = model.UserPreference{Email: "jess@cafe.test", EmailNotifications: true}
	svc := NewPreferencesService(repo)

	pref, err := svc.Get(context.Background(), "jess@cafe.test")

	require.NoError(t, err)
	assert.True(t, pref.EmailNotifications)
}
