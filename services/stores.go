package services

import (
	"time"

	"club-checkin-system/models"
)

// Store interfaces consumed by the services. Lookups return (nil, nil) when
// the record does not exist; implementations live in the stores package and
// are injected explicitly, never reached for through a package-level handle.

type TicketStore interface {
	GetByID(id string) (*models.Ticket, error)
	GetByStudentID(studentID string) (*models.Ticket, error)
	// Upsert creates the ticket or overwrites the registration fields of an
	// existing row with the same ID. Points, status and check-in history are
	// never assigned on conflict; those stay owned by the check-in engine.
	Upsert(t *models.Ticket) error
	// ListAll returns tickets in registration order (created_at, then id),
	// the retrieval order the leaderboard tie-break is defined against.
	ListAll() ([]models.Ticket, error)
	AppendClubCheckIn(ci *models.ClubCheckIn) error
	// SaveCheckInState persists the engine-owned fields (points, status,
	// counters, last-check-in markers) of an existing ticket.
	SaveCheckInState(t *models.Ticket) error
	AddPoints(studentID string, delta int64) error
	SetPoints(id string, points int64) error
	SetCheckInStatus(id string, status bool) error
	Count() (int64, error)
	CountCheckedIn() (int64, error)
}

type AdminDirectory interface {
	GetByUsername(username string) (*models.AdminAccount, error)
	RecordProcessedCheckIn(username string, at time.Time) error
	UpsertBatch(admins []models.AdminAccount) error
}

type ClubLedgerStore interface {
	Append(rec *models.ClubCheckInRecord) error
	ExistsForClubPair(studentID, clubSlug string) (bool, error)
	ListByClub(clubName string) ([]models.ClubCheckInRecord, error)
	ListByAdmin(adminUsername string) ([]models.ClubCheckInRecord, error)
	ListAll() ([]models.ClubCheckInRecord, error)
	Count() (int64, error)
}

type PeerLedgerStore interface {
	Append(rec *models.PeerCheckInRecord) error
	ExistsForPeerPair(a, b string) (bool, error)
}

type SnapshotStore interface {
	Save(snap *models.LeaderboardSnapshot) error
	ListRecent(limit int) ([]models.LeaderboardSnapshot, error)
}

// Stores bundles the individual stores and scopes them to a transaction:
// inside Transact, the callback receives a Stores view whose writes commit
// or roll back together.
type Stores interface {
	Tickets() TicketStore
	Admins() AdminDirectory
	ClubLedger() ClubLedgerStore
	PeerLedger() PeerLedgerStore
	Snapshots() SnapshotStore
	Transact(fn func(Stores) error) error
}
