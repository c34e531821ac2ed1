// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/models"
)

func TestPreferencesService_Load_Missing_UsesDefaults(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Load(gomock.Any(), "app-store").Return(models.Preferences{}, store.ErrPreferencesNotFound)

	require.NoError(t, f.prefs.Load(context.Background()))

	snap := f.prefs.Snapshot()
	assert.False(t, snap.DarkMode)
	assert.Nil(t, snap.LoggedInUser)
	assert.NotNil(t, snap.ActivityLog)
	assert.Empty(t, snap.ActivityLog)
}

func TestPreferencesService_Load_RestoresStateAndNotifies(t *testing.T) {
	f := newFixture(t)

	u := user(1, "Leanne", "l@x.com")
	stored := models.Preferences{
		DarkMode:     true,
		LoggedInUser: &u,
		ActivityLog:  []models.ActivityLogEntry{{ID: "x", Action: models.ActionAdd, UserName: "Ann"}},
	}
	f.repo.EXPECT().Load(gomock.Any(), "app-store").Return(stored, nil)

	notified := make(map[Slice]int)
	for _, s := range allSlices {
		s := s
		f.prefs.Subscribe(s, func(models.Preferences) { notified[s]++ })
	}

	require.NoError(t, f.prefs.Load(context.Background()))

	snap := f.prefs.Snapshot()
	assert.True(t, snap.DarkMode)
	require.NotNil(t, snap.LoggedInUser)
	assert.Equal(t, "Leanne", snap.LoggedInUser.Name)
	assert.Len(t, snap.ActivityLog, 1)
	assert.Equal(t, map[Slice]int{SliceDarkMode: 1, SliceLoggedInUser: 1, SliceActivityLog: 1}, notified)
}

func TestPreferencesService_Load_Error(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Load(gomock.Any(), "app-store").Return(models.Preferences{}, errors.New("disk gone"))

	err := f.prefs.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.False(t, f.prefs.Snapshot().DarkMode)
}

func TestPreferencesService_EveryChangePersistsFullBlob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var saved []models.Preferences
	f.repo.EXPECT().Save(gomock.Any(), "app-store", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p models.Preferences) error {
			saved = append(saved, p)
			return nil
		}).Times(4)

	enabled, err := f.prefs.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	u := user(2, "Ervin", "e@x.com")
	require.NoError(t, f.prefs.SetLoggedInUser(ctx, &u))
	_, err = f.prefs.AddActivity(ctx, models.ActionAdd, "Ann")
	require.NoError(t, err)
	require.NoError(t, f.prefs.SetDarkMode(ctx, false))

	require.Len(t, saved, 4)
	assert.True(t, saved[0].DarkMode)
	require.NotNil(t, saved[1].LoggedInUser)
	assert.Equal(t, "Ervin", saved[1].LoggedInUser.Name)
	assert.True(t, saved[1].DarkMode)
	assert.Len(t, saved[2].ActivityLog, 1)
	assert.False(t, saved[3].DarkMode)
	assert.Len(t, saved[3].ActivityLog, 1)

	// the caller's user is copied, not aliased
	u.Name = "changed"
	assert.Equal(t, "Ervin", f.prefs.Snapshot().LoggedInUser.Name)
}

func TestPreferencesService_AddActivity_NewestFirstUniqueIDs(t *testing.T) {
	f := newFixture(t)
	f.allowSaves()
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	f.prefs.now = func() time.Time { return now }

	first, err := f.prefs.AddActivity(ctx, models.ActionAdd, "Ann")
	require.NoError(t, err)
	second, err := f.prefs.AddActivity(ctx, models.ActionDelete, "Bob")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, now, first.Timestamp)
	assert.Equal(t, `User "Bob" deleted`, second.Message)

	log := f.prefs.Snapshot().ActivityLog
	require.Len(t, log, 2)
	assert.Equal(t, second.ID, log[0].ID)
	assert.Equal(t, first.ID, log[1].ID)
}

func TestPreferencesService_ClearActivity_IDsNotReused(t *testing.T) {
	f := newFixture(t)
	f.allowSaves()
	ctx := context.Background()

	before, err := f.prefs.AddActivity(ctx, models.ActionAdd, "Ann")
	require.NoError(t, err)
	require.NoError(t, f.prefs.ClearActivity(ctx))
	assert.Empty(t, f.prefs.Snapshot().ActivityLog)

	after, err := f.prefs.AddActivity(ctx, models.ActionAdd, "Ann")
	require.NoError(t, err)
	assert.NotEqual(t, before.ID, after.ID)
	assert.Len(t, f.prefs.Snapshot().ActivityLog, 1)
}

func TestPreferencesService_SaveError_KeepsChangeAndReports(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Save(gomock.Any(), "app-store", gomock.Any()).Return(errors.New("read-only"))

	err := f.prefs.SetDarkMode(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
	assert.True(t, f.prefs.Snapshot().DarkMode)
}

func TestPreferencesService_SubscribeBySlice(t *testing.T) {
	f := newFixture(t)
	f.allowSaves()
	ctx := context.Background()

	var darkCalls, logCalls int
	var lastDark bool
	unsubscribeDark := f.prefs.Subscribe(SliceDarkMode, func(p models.Preferences) {
		darkCalls++
		lastDark = p.DarkMode
	})
	f.prefs.Subscribe(SliceActivityLog, func(models.Preferences) { logCalls++ })

	_, err := f.prefs.ToggleDarkMode(ctx)
	require.NoError(t, err)
	_, err = f.prefs.AddActivity(ctx, models.ActionEdit, "Ann")
	require.NoError(t, err)

	assert.Equal(t, 1, darkCalls)
	assert.True(t, lastDark)
	assert.Equal(t, 1, logCalls)

	unsubscribeDark()
	unsubscribeDark()
	_, err = f.prefs.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, darkCalls)
}

func TestPreferencesService_SubscriberGetsCopy(t *testing.T) {
	f := newFixture(t)
	f.allowSaves()

	f.prefs.Subscribe(SliceActivityLog, func(p models.Preferences) {
		p.ActivityLog[0].UserName = "mutated"
	})

	_, err := f.prefs.AddActivity(context.Background(), models.ActionAdd, "Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", f.prefs.Snapshot().ActivityLog[0].UserName)
}

func TestSlice_String(t *testing.T) {
	assert.Equal(t, "darkMode", SliceDarkMode.String())
	assert.Equal(t, "loggedInUser", SliceLoggedInUser.String())
	assert.Equal(t, "activityLog", SliceActivityLog.String())
	assert.Equal(t, "slice(9)", Slice(9).String())
}
