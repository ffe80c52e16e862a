package models

import (
	"sort"
	"time"
)

// ClubCheckInRecord is the audit ledger mirror of a club check-in, kept
// independent of the ticket's embedded history for listing by club or by
// admin. The (student_id, club_slug) unique index backs the idempotency
// guarantee on the write path.
type ClubCheckInRecord struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	StudentID     string    `gorm:"not null;uniqueIndex:idx_student_club" json:"studentID"`
	ClubSlug      string    `gorm:"not null;uniqueIndex:idx_student_club" json:"-"`
	StudentName   string    `json:"studentName"`
	ClubName      string    `gorm:"index;not null" json:"clubName"`
	AdminUsername string    `gorm:"index" json:"adminUsername"`
	CheckInAt     time.Time `gorm:"index" json:"checkInAt"`
	PointsAwarded int64     `json:"pointsAwarded"`
}

// PeerCheckInRecord records one mutual peer check-in. PairKey is the
// order-insensitive identity of the pair, so (A,B) and (B,A) collide on the
// unique index.
type PeerCheckInRecord struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	PairKey     string    `gorm:"uniqueIndex;not null" json:"pair"`
	ScannerID   string    `gorm:"index;not null" json:"scannerID"`
	PeerID      string    `gorm:"index;not null" json:"peerID"`
	CheckedInAt time.Time `json:"timestamp"`
}

// PeerPairKey canonicalizes an unordered student pair into a single key.
func PeerPairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + "|" + ids[1]
}
