package stores

import (
	"errors"

	"club-checkin-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ticketStore struct {
	db *gorm.DB
}

func (s *ticketStore) GetByID(id string) (*models.Ticket, error) {
	var t models.Ticket
	err := s.db.Preload("ClubCheckIns").Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ticketStore) GetByStudentID(studentID string) (*models.Ticket, error) {
	var t models.Ticket
	err := s.db.Preload("ClubCheckIns").Where("student_id = ?", studentID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ticketStore) Upsert(t *models.Ticket) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_id",
			"name",
			"faculty",
			"food_type",
			"food_note",
			"student_group",
			"registered_at",
			"updated_at",
		}),
	}).Create(t).Error
}

func (s *ticketStore) ListAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.db.Preload("ClubCheckIns").
		Order("created_at ASC, id ASC").
		Find(&tickets).Error
	return tickets, err
}

func (s *ticketStore) AppendClubCheckIn(ci *models.ClubCheckIn) error {
	return s.db.Create(ci).Error
}

func (s *ticketStore) SaveCheckInState(t *models.Ticket) error {
	return s.db.Model(&models.Ticket{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"check_in_status":        t.CheckInStatus,
			"points":                 t.Points,
			"total_clubs_checked_in": t.TotalClubsCheckedIn,
			"last_check_in_club":     t.LastCheckInClub,
			"last_check_in_at":       t.LastCheckInAt,
		}).Error
}

func (s *ticketStore) AddPoints(studentID string, delta int64) error {
	return s.db.Model(&models.Ticket{}).
		Where("student_id = ?", studentID).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}

func (s *ticketStore) SetPoints(id string, points int64) error {
	return s.db.Model(&models.Ticket{}).
		Where("id = ?", id).
		UpdateColumn("points", points).Error
}

func (s *ticketStore) SetCheckInStatus(id string, status bool) error {
	return s.db.Model(&models.Ticket{}).
		Where("id = ?", id).
		UpdateColumn("check_in_status", status).Error
}

func (s *ticketStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Ticket{}).Count(&n).Error
	return n, err
}

func (s *ticketStore) CountCheckedIn() (int64, error) {
	var n int64
	err := s.db.Model(&models.Ticket{}).Where("check_in_status = ?", true).Count(&n).Error
	return n, err
}
