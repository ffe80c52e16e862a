package services

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"club-checkin-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsConfig holds the award amounts. Fixed per event, overridable through
// CLUB_CHECKIN_POINTS / PEER_CHECKIN_POINTS.
type PointsConfig struct {
	ClubCheckIn int64
	PeerCheckIn int64
}

var DefaultPoints = PointsConfig{
	ClubCheckIn: 100,
	PeerCheckIn: 30,
}

func PointsFromEnv() PointsConfig {
	p := DefaultPoints
	if v, err := strconv.ParseInt(os.Getenv("CLUB_CHECKIN_POINTS"), 10, 64); err == nil && v > 0 {
		p.ClubCheckIn = v
	}
	if v, err := strconv.ParseInt(os.Getenv("PEER_CHECKIN_POINTS"), 10, 64); err == nil && v > 0 {
		p.PeerCheckIn = v
	}
	return p
}

// CheckInService is the sole writer of ticket points and check-in state. Each
// award runs its duplicate check up front and again inside the transaction
// via the ledger uniqueness constraints, so two racing requests for the same
// (student, club) or pair cannot both commit.
type CheckInService struct {
	Stores Stores
	Points PointsConfig
	Now    func() time.Time
}

func NewCheckInService(stores Stores) *CheckInService {
	return &CheckInService{
		Stores: stores,
		Points: PointsFromEnv(),
		Now:    time.Now,
	}
}

func (s *CheckInService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ClubCheckIn awards the club points to a student's ticket on behalf of a
// staff account. The supplied credentials must match the stored account's
// club and role; a student can be awarded by a given club at most once.
func (s *CheckInService) ClubCheckIn(studentID string, creds models.AdminCredentials) (*models.Ticket, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	if creds.Username == "" || creds.ClubName == "" {
		return nil, ErrAdminRoleRequired
	}

	admin, err := s.Stores.Admins().GetByUsername(creds.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	if admin.ClubName != creds.ClubName {
		return nil, ErrAdminClubMismatch
	}
	if admin.Role != creds.Role {
		return nil, ErrAdminRoleMismatch
	}

	ticket, err := s.Stores.Tickets().GetByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	clubSlug := ClubKey(creds.ClubName)
	if ticket.HasClubCheckIn(clubSlug) {
		return nil, ErrDuplicateClubCheckIn
	}

	now := s.now()
	err = s.Stores.Transact(func(tx Stores) error {
		entry := models.ClubCheckIn{
			TicketID:      ticket.ID,
			ClubSlug:      clubSlug,
			ClubName:      creds.ClubName,
			CheckInAt:     now,
			AdminUsername: admin.Username,
			PointsAwarded: s.Points.ClubCheckIn,
		}
		if err := tx.Tickets().AppendClubCheckIn(&entry); err != nil {
			return err
		}

		ticket.ClubCheckIns = append(ticket.ClubCheckIns, entry)
		ticket.Points += s.Points.ClubCheckIn
		ticket.CheckInStatus = true
		ticket.LastCheckInClub = creds.ClubName
		ticket.LastCheckInAt = &now
		ticket.TotalClubsCheckedIn = len(ticket.ClubCheckIns)
		if err := tx.Tickets().SaveCheckInState(ticket); err != nil {
			return err
		}

		rec := models.ClubCheckInRecord{
			ID:            uuid.NewString(),
			StudentID:     studentID,
			StudentName:   ticket.Name,
			ClubSlug:      clubSlug,
			ClubName:      creds.ClubName,
			AdminUsername: admin.Username,
			CheckInAt:     now,
			PointsAwarded: s.Points.ClubCheckIn,
		}
		if err := tx.ClubLedger().Append(&rec); err != nil {
			return err
		}

		return tx.Admins().RecordProcessedCheckIn(admin.Username, now)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent check-in for the same club.
			return nil, ErrDuplicateClubCheckIn
		}
		return nil, err
	}

	log.Printf("club check-in: student=%s club=%s admin=%s +%d points",
		studentID, creds.ClubName, admin.Username, s.Points.ClubCheckIn)
	return ticket, nil
}

// PeerCheckInResult reports a successful mutual check-in.
type PeerCheckInResult struct {
	ScannerID     string `json:"scannerID"`
	PeerID        string `json:"peerID"`
	PointsAwarded int64  `json:"pointsAwarded"`
}

// PeerCheckIn awards the peer points to both students of an unordered pair,
// at most once per pair for the lifetime of the event. Both tickets are
// resolved before anything is written, so a missing peer leaves no record.
func (s *CheckInService) PeerCheckIn(scannerID, peerID string) (*PeerCheckInResult, error) {
	if scannerID == "" || peerID == "" {
		return nil, ErrStudentIDRequired
	}
	if scannerID == peerID {
		return nil, ErrSelfCheckIn
	}

	exists, err := s.Stores.PeerLedger().ExistsForPeerPair(scannerID, peerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePairCheckIn
	}

	for _, id := range []string{scannerID, peerID} {
		t, err := s.Stores.Tickets().GetByStudentID(id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrStudentTicketNotFound(id)
		}
	}

	now := s.now()
	err = s.Stores.Transact(func(tx Stores) error {
		rec := models.PeerCheckInRecord{
			ID:          uuid.NewString(),
			PairKey:     models.PeerPairKey(scannerID, peerID),
			ScannerID:   scannerID,
			PeerID:      peerID,
			CheckedInAt: now,
		}
		if err := tx.PeerLedger().Append(&rec); err != nil {
			return err
		}
		if err := tx.Tickets().AddPoints(scannerID, s.Points.PeerCheckIn); err != nil {
			return err
		}
		return tx.Tickets().AddPoints(peerID, s.Points.PeerCheckIn)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePairCheckIn
		}
		return nil, err
	}

	log.Printf("peer check-in: %s <-> %s +%d points each", scannerID, peerID, s.Points.PeerCheckIn)
	return &PeerCheckInResult{
		ScannerID:     scannerID,
		PeerID:        peerID,
		PointsAwarded: s.Points.PeerCheckIn,
	}, nil
}

// AdjustPoints overwrites a ticket's point total (staff correction path).
// Kept on the engine so points stay single-writer.
func (s *CheckInService) AdjustPoints(ticketID string, points int64) (*models.Ticket, error) {
	ticket, err := s.Stores.Tickets().GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if err := s.Stores.Tickets().SetPoints(ticketID, points); err != nil {
		return nil, err
	}
	ticket.Points = points
	return ticket, nil
}
