package stores

import (
	"errors"
	"time"

	"club-checkin-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminStore struct {
	db *gorm.DB
}

func (s *adminStore) GetByUsername(username string) (*models.AdminAccount, error) {
	var a models.AdminAccount
	err := s.db.Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *adminStore) RecordProcessedCheckIn(username string, at time.Time) error {
	return s.db.Model(&models.AdminAccount{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"total_check_ins_processed": gorm.Expr("total_check_ins_processed + 1"),
			"last_check_in_processed":   at,
		}).Error
}

func (s *adminStore) UpsertBatch(admins []models.AdminAccount) error {
	if len(admins) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password",
			"role",
			"club_name",
			"display_name",
			"full_name",
			"updated_at",
		}),
	}).Create(&admins).Error
}
