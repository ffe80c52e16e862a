package services_test

import (
	"testing"

	"club-checkin-system/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStudentID(t *testing.T) {
	t.Run("explicit studentID wins", func(t *testing.T) {
		id, err := services.DeriveStudentID(&services.RegisterRequest{
			StudentID: "6401234567", CustomStudentID: "custom",
		})
		require.NoError(t, err)
		assert.Equal(t, "6401234567", id)
	})

	t.Run("custom ID used when studentID absent", func(t *testing.T) {
		id, err := services.DeriveStudentID(&services.RegisterRequest{
			CustomStudentID: "  my-id  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "my-id", id)
	})

	t.Run("fallback from name and timestamp", func(t *testing.T) {
		id, err := services.DeriveStudentID(&services.RegisterRequest{
			Name:         "Somsak Jaidee Wongsuwan",
			RegisteredAt: "1756444812345",
		})
		require.NoError(t, err)
		// first 10 chars of the de-spaced name + last 6 digits
		assert.Equal(t, "SomsakJaid-812345", id)
	})

	t.Run("short inputs are kept whole", func(t *testing.T) {
		id, err := services.DeriveStudentID(&services.RegisterRequest{
			Name:         "Ann",
			RegisteredAt: "99",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann-99", id)
	})

	t.Run("underivable", func(t *testing.T) {
		_, err := services.DeriveStudentID(&services.RegisterRequest{Name: "Ann"})
		assert.Equal(t, services.ErrMissingFields, err)
	})
}

func TestRegister_CreatesTicket(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewTicketService(st)

	ticket, err := svc.Register(&services.RegisterRequest{
		ID:           "tk-1",
		StudentID:    "S1",
		Name:         "Student One",
		Faculty:      "Engineering",
		FoodType:     "vegetarian",
		FoodNote:     "no peanuts",
		Group:        "A",
		RegisteredAt: "1756444800000",
	})
	require.NoError(t, err)

	assert.Equal(t, "S1", ticket.StudentID)
	assert.Equal(t, int64(0), ticket.Points)
	assert.False(t, ticket.CheckInStatus)
	assert.Equal(t, "no peanuts", ticket.FoodNote)
}

func TestRegister_MissingFields(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewTicketService(st)

	_, err := svc.Register(&services.RegisterRequest{ID: "tk-1", Name: "X"})
	assert.Equal(t, services.ErrMissingFields, err)
}

func TestRegister_SameIDOverwrites(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewTicketService(st)

	_, err := svc.Register(&services.RegisterRequest{
		ID: "tk-1", StudentID: "S1", Name: "Old Name",
		Faculty: "Engineering", FoodType: "halal", RegisteredAt: "1756444800000",
	})
	require.NoError(t, err)

	// re-registration with the same ID replaces the ticket
	ticket, err := svc.Register(&services.RegisterRequest{
		ID: "tk-1", StudentID: "S1", Name: "New Name",
		Faculty: "Science", FoodType: "vegan", RegisteredAt: "1756444999000",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", ticket.Name)
	assert.Equal(t, "Science", ticket.Faculty)

	tickets, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestRegister_OverwriteKeepsCheckInState(t *testing.T) {
	engine, st := newTestEngine(t)
	svc := services.NewTicketService(st)
	seedAdmin(t, st, "a1", "Chess", "staff")

	_, err := svc.Register(&services.RegisterRequest{
		ID: "tk-1", StudentID: "S1", Name: "Old Name",
		Faculty: "Engineering", FoodType: "halal", RegisteredAt: "1756444800000",
	})
	require.NoError(t, err)

	_, err = engine.ClubCheckIn("S1", staffCreds("a1", "Chess"))
	require.NoError(t, err)

	// re-registration updates the registration fields only; the earned
	// points, status and history survive
	ticket, err := svc.Register(&services.RegisterRequest{
		ID: "tk-1", StudentID: "S1", Name: "New Name",
		Faculty: "Science", FoodType: "vegan", RegisteredAt: "1756444999000",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", ticket.Name)
	assert.Equal(t, "Science", ticket.Faculty)
	assert.Equal(t, int64(100), ticket.Points)
	assert.True(t, ticket.CheckInStatus)
	assert.Equal(t, 1, ticket.TotalClubsCheckedIn)
	require.Len(t, ticket.ClubCheckIns, 1)
	assert.Equal(t, int64(100)*int64(ticket.TotalClubsCheckedIn), ticket.Points)

	// the preserved history still blocks a second award for the same club
	_, err = engine.ClubCheckIn("S1", staffCreds("a1", "Chess"))
	assert.Equal(t, services.ErrDuplicateClubCheckIn, err)
}

func TestCheckTicket(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewTicketService(st)
	seedTicket(t, st, "tk-1", "S1", "Student One")

	result, err := svc.CheckTicket("S1")
	require.NoError(t, err)
	require.NotNil(t, result.Ticket)
	assert.False(t, result.AllowRegister)

	result, err = svc.CheckTicket("S9")
	require.NoError(t, err)
	assert.Nil(t, result.Ticket)
	assert.True(t, result.AllowRegister)

	_, err = svc.CheckTicket("")
	assert.Equal(t, services.ErrStudentIDRequired, err)
}

func TestSetCheckInStatus(t *testing.T) {
	st := newTestStores(t)
	svc := services.NewTicketService(st)
	seedTicket(t, st, "tk-1", "S1", "Student One")

	ticket, err := svc.SetCheckInStatus("tk-1", true)
	require.NoError(t, err)
	assert.True(t, ticket.CheckInStatus)

	_, err = svc.SetCheckInStatus("tk-9", true)
	assert.Equal(t, services.ErrTicketNotFound, err)
}
