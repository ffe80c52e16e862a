package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket is a student's e-ticket for the event: registration data plus the
// running point total and club check-in history. Point fields are written
// only by the check-in engine.
type Ticket struct {
	ID        string `gorm:"primaryKey" json:"id"`
	StudentID string `gorm:"uniqueIndex;not null" json:"studentID"`
	Name      string `gorm:"not null" json:"name"`
	Faculty   string `json:"faculty"`
	FoodType  string `json:"foodType"`
	FoodNote  string `json:"foodNote"`
	Group     string `gorm:"column:student_group" json:"group"`

	// RegisteredAt is kept as submitted by the registration client
	// (also feeds the fallback studentID derivation).
	RegisteredAt string `json:"registeredAt"`

	CheckInStatus       bool       `gorm:"default:false" json:"checkInStatus"`
	Points              int64      `gorm:"default:0" json:"points"`
	TotalClubsCheckedIn int        `gorm:"default:0" json:"totalClubsCheckedIn"`
	LastCheckInClub     string     `json:"lastCheckInClub,omitempty"`
	LastCheckInAt       *time.Time `json:"lastCheckInAt,omitempty"`

	ClubCheckIns []ClubCheckIn `gorm:"foreignKey:TicketID;references:ID" json:"clubCheckIns"`

	Timestamps
}

// ClubCheckIn is one entry of a ticket's embedded club check-in history.
// The unique index on (ticket_id, club_slug) makes the one-award-per-club
// rule a storage-level guarantee, not just a read-then-write check.
type ClubCheckIn struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TicketID      string    `gorm:"not null;uniqueIndex:idx_ticket_club" json:"-"`
	ClubSlug      string    `gorm:"not null;uniqueIndex:idx_ticket_club" json:"-"`
	ClubName      string    `gorm:"not null" json:"clubName"`
	CheckInAt     time.Time `json:"checkInAt"`
	AdminUsername string    `json:"adminUsername"`
	PointsAwarded int64     `json:"pointsAwarded"`
}

// HasClubCheckIn reports whether the ticket already holds a history entry
// for the given canonical club key.
func (t *Ticket) HasClubCheckIn(clubSlug string) bool {
	for _, ci := range t.ClubCheckIns {
		if ci.ClubSlug == clubSlug {
			return true
		}
	}
	return false
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
