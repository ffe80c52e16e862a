package models

import "time"

// AdminAccount is a club-staff account. The processed counters are updated
// only as a side effect of club check-ins the account handled.
type AdminAccount struct {
	Username    string `gorm:"primaryKey" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	Role        string `gorm:"not null" json:"role"`
	ClubName    string `gorm:"index" json:"clubName"`
	DisplayName string `json:"name"`
	FullName    string `json:"fullName"`

	TotalCheckInsProcessed int64      `gorm:"default:0" json:"totalCheckInsProcessed"`
	LastCheckInProcessed   *time.Time `json:"lastCheckInProcessed,omitempty"`

	Timestamps
}

// AdminCredentials is the role context a staff client sends along with a
// club check-in request. It must match the stored account exactly.
type AdminCredentials struct {
	Username string `json:"username"`
	ClubName string `json:"clubName"`
	Role     string `json:"role"`
}
