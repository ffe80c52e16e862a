package services

import (
	"log"

	"club-checkin-system/models"
)

type AdminService struct {
	Stores Stores
}

func NewAdminService(stores Stores) *AdminService {
	return &AdminService{Stores: stores}
}

// AdminLoginResult is the role context returned to a staff client on login;
// it is sent back verbatim with club check-in requests.
type AdminLoginResult struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	ClubName string `json:"clubName"`
	FullName string `json:"fullName"`
}

// Authenticate checks a staff login. Passwords are compared as stored;
// accounts come from the event organizers' roster import, not self-signup.
func (s *AdminService) Authenticate(username, password string) (*AdminLoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	admin, err := s.Stores.Admins().GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	if admin.Password != password {
		return nil, ErrLoginFailed
	}

	return &AdminLoginResult{
		Role:     admin.Role,
		Name:     admin.DisplayName,
		Username: admin.Username,
		ClubName: admin.ClubName,
		FullName: admin.FullName,
	}, nil
}

// ImportAdmins batch-upserts staff accounts keyed by username and returns the
// number imported.
func (s *AdminService) ImportAdmins(admins []models.AdminAccount) (int, error) {
	if len(admins) == 0 {
		return 0, ErrNoAdminsData
	}
	for i := range admins {
		if admins[i].Username == "" {
			return 0, ErrMissingFields
		}
	}
	if err := s.Stores.Admins().UpsertBatch(admins); err != nil {
		return 0, err
	}
	log.Printf("imported %d admin account(s)", len(admins))
	return len(admins), nil
}

func (s *AdminService) ListClubCheckInsByClub(clubName string) ([]models.ClubCheckInRecord, error) {
	return s.Stores.ClubLedger().ListByClub(clubName)
}

func (s *AdminService) ListClubCheckInsByAdmin(username string) ([]models.ClubCheckInRecord, error) {
	return s.Stores.ClubLedger().ListByAdmin(username)
}

// EventStatistics summarizes the event for the organizers' dashboard.
type EventStatistics struct {
	TotalTickets      int64 `json:"totalTickets"`
	TotalClubCheckIns int64 `json:"totalClubCheckIns"`
	CheckedInTickets  int64 `json:"checkedInTickets"`
}

// OverviewReport is the parameterless ledger listing: every ticket, every
// club check-in record, and the aggregate statistics.
type OverviewReport struct {
	Tickets      []models.Ticket            `json:"tickets"`
	ClubCheckIns []models.ClubCheckInRecord `json:"clubCheckIns"`
	Statistics   EventStatistics            `json:"statistics"`
}

func (s *AdminService) Overview() (*OverviewReport, error) {
	tickets, err := s.Stores.Tickets().ListAll()
	if err != nil {
		return nil, err
	}
	checkIns, err := s.Stores.ClubLedger().ListAll()
	if err != nil {
		return nil, err
	}
	checkedIn, err := s.Stores.Tickets().CountCheckedIn()
	if err != nil {
		return nil, err
	}
	return &OverviewReport{
		Tickets:      tickets,
		ClubCheckIns: checkIns,
		Statistics: EventStatistics{
			TotalTickets:      int64(len(tickets)),
			TotalClubCheckIns: int64(len(checkIns)),
			CheckedInTickets:  checkedIn,
		},
	}, nil
}
