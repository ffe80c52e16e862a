package stores

import (
	"club-checkin-system/models"

	"gorm.io/gorm"
)

type clubLedgerStore struct {
	db *gorm.DB
}

func (s *clubLedgerStore) Append(rec *models.ClubCheckInRecord) error {
	return s.db.Create(rec).Error
}

func (s *clubLedgerStore) ExistsForClubPair(studentID, clubSlug string) (bool, error) {
	var n int64
	err := s.db.Model(&models.ClubCheckInRecord{}).
		Where("student_id = ? AND club_slug = ?", studentID, clubSlug).
		Count(&n).Error
	return n > 0, err
}

func (s *clubLedgerStore) ListByClub(clubName string) ([]models.ClubCheckInRecord, error) {
	var recs []models.ClubCheckInRecord
	err := s.db.Where("club_name = ?", clubName).
		Order("check_in_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *clubLedgerStore) ListByAdmin(adminUsername string) ([]models.ClubCheckInRecord, error) {
	var recs []models.ClubCheckInRecord
	err := s.db.Where("admin_username = ?", adminUsername).
		Order("check_in_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *clubLedgerStore) ListAll() ([]models.ClubCheckInRecord, error) {
	var recs []models.ClubCheckInRecord
	err := s.db.Order("check_in_at DESC").Find(&recs).Error
	return recs, err
}

func (s *clubLedgerStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.ClubCheckInRecord{}).Count(&n).Error
	return n, err
}

type peerLedgerStore struct {
	db *gorm.DB
}

func (s *peerLedgerStore) Append(rec *models.PeerCheckInRecord) error {
	return s.db.Create(rec).Error
}

func (s *peerLedgerStore) ExistsForPeerPair(a, b string) (bool, error) {
	var n int64
	err := s.db.Model(&models.PeerCheckInRecord{}).
		Where("pair_key = ?", models.PeerPairKey(a, b)).
		Count(&n).Error
	return n > 0, err
}
