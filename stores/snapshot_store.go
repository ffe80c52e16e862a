package stores

import (
	"club-checkin-system/models"

	"gorm.io/gorm"
)

type snapshotStore struct {
	db *gorm.DB
}

func (s *snapshotStore) Save(snap *models.LeaderboardSnapshot) error {
	return s.db.Create(snap).Error
}

func (s *snapshotStore) ListRecent(limit int) ([]models.LeaderboardSnapshot, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var snaps []models.LeaderboardSnapshot
	err := s.db.Order("taken_at DESC").Limit(limit).Find(&snaps).Error
	return snaps, err
}
