package services_test

import (
	"testing"

	"club-checkin-system/models"
	"club-checkin-system/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewAdminService(st)
	require.NoError(t, st.Admins().UpsertBatch([]models.AdminAccount{{
		Username:    "a1",
		Password:    "secret",
		Role:        "staff",
		ClubName:    "Chess",
		DisplayName: "A. One",
		FullName:    "Admin One",
	}}))

	result, err := svc.Authenticate("a1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "staff", result.Role)
	assert.Equal(t, "Chess", result.ClubName)
	assert.Equal(t, "A. One", result.Name)
	assert.Equal(t, "Admin One", result.FullName)

	_, err = svc.Authenticate("a1", "wrong")
	assert.Equal(t, services.ErrLoginFailed, err)

	_, err = svc.Authenticate("ghost", "secret")
	assert.Equal(t, services.ErrAdminNotFound, err)

	_, err = svc.Authenticate("", "")
	assert.Equal(t, services.ErrCredentialsRequired, err)
}

func TestImportAdmins_UpsertsByUsername(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewAdminService(st)

	count, err := svc.ImportAdmins([]models.AdminAccount{
		{Username: "a1", Password: "p1", Role: "staff", ClubName: "Chess"},
		{Username: "a2", Password: "p2", Role: "staff", ClubName: "Robotics"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// re-import moves a1 to a new club without duplicating the account
	_, err = svc.ImportAdmins([]models.AdminAccount{
		{Username: "a1", Password: "p1", Role: "president", ClubName: "Drama"},
	})
	require.NoError(t, err)

	admin, err := st.Admins().GetByUsername("a1")
	require.NoError(t, err)
	assert.Equal(t, "Drama", admin.ClubName)
	assert.Equal(t, "president", admin.Role)

	_, err = svc.ImportAdmins(nil)
	assert.Equal(t, services.ErrNoAdminsData, err)

	_, err = svc.ImportAdmins([]models.AdminAccount{{Password: "x"}})
	assert.Equal(t, services.ErrMissingFields, err)
}

func TestOverview(t *testing.T) {
	st := newTestStores(t)
	adminSvc := services.NewAdminService(st)
	engine := services.NewCheckInService(st)

	seedTicket(t, st, "tk-1", "S1", "Student One")
	seedTicket(t, st, "tk-2", "S2", "Student Two")
	seedAdmin(t, st, "a1", "Chess", "staff")

	_, err := engine.ClubCheckIn("S1", staffCreds("a1", "Chess"))
	require.NoError(t, err)

	report, err := adminSvc.Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Statistics.TotalTickets)
	assert.Equal(t, int64(1), report.Statistics.TotalClubCheckIns)
	assert.Equal(t, int64(1), report.Statistics.CheckedInTickets)
	assert.Len(t, report.Tickets, 2)
	assert.Len(t, report.ClubCheckIns, 1)
}
