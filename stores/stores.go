package stores

import (
	"club-checkin-system/services"

	"gorm.io/gorm"
)

// DB is the gorm-backed implementation of services.Stores. The same struct
// doubles as the transaction view: Transact hands the callback a DB bound to
// the gorm transaction handle.
type DB struct {
	db *gorm.DB
}

func New(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Tickets() services.TicketStore        { return &ticketStore{db: s.db} }
func (s *DB) Admins() services.AdminDirectory      { return &adminStore{db: s.db} }
func (s *DB) ClubLedger() services.ClubLedgerStore { return &clubLedgerStore{db: s.db} }
func (s *DB) PeerLedger() services.PeerLedgerStore { return &peerLedgerStore{db: s.db} }
func (s *DB) Snapshots() services.SnapshotStore    { return &snapshotStore{db: s.db} }

func (s *DB) Transact(fn func(services.Stores) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&DB{db: tx})
	})
}
