package services_test

import (
	"os"
	"testing"

	"club-checkin-system/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_SortedDescending(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewLeaderboardService(st)

	seedTicket(t, st, "tk-1", "S1", "Low")
	seedTicket(t, st, "tk-2", "S2", "High")
	seedTicket(t, st, "tk-3", "S3", "Mid")
	require.NoError(t, st.Tickets().SetPoints("tk-1", 30))
	require.NoError(t, st.Tickets().SetPoints("tk-2", 230))
	require.NoError(t, st.Tickets().SetPoints("tk-3", 130))

	entries, err := svc.Build()
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "High", entries[0].Name)
	assert.Equal(t, "Mid", entries[1].Name)
	assert.Equal(t, "Low", entries[2].Name)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Point, entries[i].Point)
	}
}

func TestLeaderboard_TiesKeepRetrievalOrder(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewLeaderboardService(st)

	seedTicket(t, st, "tk-1", "S1", "First Registered")
	seedTicket(t, st, "tk-2", "S2", "Second Registered")
	seedTicket(t, st, "tk-3", "S3", "Third Registered")
	for _, id := range []string{"tk-1", "tk-2", "tk-3"} {
		require.NoError(t, st.Tickets().SetPoints(id, 100))
	}

	// two identical builds, identical order
	for i := 0; i < 2; i++ {
		entries, err := svc.Build()
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "First Registered", entries[0].Name)
		assert.Equal(t, "Second Registered", entries[1].Name)
		assert.Equal(t, "Third Registered", entries[2].Name)
	}
}

func TestLeaderboard_Snapshot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	st := newTestStores(t)
	svc := services.NewLeaderboardService(st)
	seedTicket(t, st, "tk-1", "S1", "Student One")
	require.NoError(t, st.Tickets().SetPoints("tk-1", 130))

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.EntryCount)
	assert.Equal(t, "Student One", snap.TopName)
	assert.Equal(t, int64(130), snap.TopPoint)

	// R2 unconfigured: report written locally
	data, err := os.ReadFile(snap.ReportURL)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rank,name,point,totalClubsCheckedIn")
	assert.Contains(t, string(data), "1,Student One,130,0")

	snaps, err := svc.RecentSnapshots(10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, snap.ID, snaps[0].ID)
}

func TestLeaderboard_EmptyStore(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewLeaderboardService(st)

	entries, err := svc.Build()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
