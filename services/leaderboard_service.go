package services

import (
	"bytes"
	"encoding/csv"
	"log"
	"sort"
	"strconv"
	"time"

	"club-checkin-system/models"
	"club-checkin-system/utils"

	"github.com/google/uuid"
)

type LeaderboardService struct {
	Stores Stores
}

func NewLeaderboardService(stores Stores) *LeaderboardService {
	return &LeaderboardService{Stores: stores}
}

// LeaderboardEntry is one ranked row of the projection.
type LeaderboardEntry struct {
	Name                string `json:"name"`
	Point               int64  `json:"point"`
	TotalClubsCheckedIn int    `json:"totalClubsCheckedIn"`
}

// Build derives the leaderboard from the ticket store: descending by point,
// ties kept in retrieval order (registration time, then ID). The tie order is
// not a contract, but it is deterministic for identical input. Recomputed on
// every call; nothing is cached.
func (s *LeaderboardService) Build() ([]LeaderboardEntry, error) {
	tickets, err := s.Stores.Tickets().ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(tickets))
	for _, t := range tickets {
		entries = append(entries, LeaderboardEntry{
			Name:                t.Name,
			Point:               t.Points,
			TotalClubsCheckedIn: t.TotalClubsCheckedIn,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Point > entries[j].Point
	})
	return entries, nil
}

// Snapshot captures the current leaderboard, writes a CSV report (R2 when
// configured, local exports/ otherwise) and records where it landed.
func (s *LeaderboardService) Snapshot() (*models.LeaderboardSnapshot, error) {
	entries, err := s.Build()
	if err != nil {
		return nil, err
	}

	takenAt := time.Now().UTC()
	snap := &models.LeaderboardSnapshot{
		ID:         uuid.NewString(),
		TakenAt:    takenAt,
		EntryCount: len(entries),
	}
	if len(entries) > 0 {
		snap.TopName = entries[0].Name
		snap.TopPoint = entries[0].Point
	}

	report, err := leaderboardCSV(entries)
	if err != nil {
		return nil, err
	}

	filename := "leaderboard-" + takenAt.Format("20060102-150405") + ".csv"
	if utils.R2Enabled() {
		url, err := utils.UploadReportToR2("reports/"+filename, report, "text/csv")
		if err != nil {
			log.Printf("[Snapshot] R2 upload failed, keeping local copy: %v", err)
		} else {
			snap.ReportURL = url
		}
	}
	if snap.ReportURL == "" {
		path, err := utils.WriteExportFile(filename, report)
		if err != nil {
			return nil, err
		}
		snap.ReportURL = path
	}

	if err := s.Stores.Snapshots().Save(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *LeaderboardService) RecentSnapshots(limit int) ([]models.LeaderboardSnapshot, error) {
	return s.Stores.Snapshots().ListRecent(limit)
}

func leaderboardCSV(entries []LeaderboardEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"rank", "name", "point", "totalClubsCheckedIn"}); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if err := w.Write([]string{
			strconv.Itoa(i + 1),
			e.Name,
			strconv.FormatInt(e.Point, 10),
			strconv.Itoa(e.TotalClubsCheckedIn),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
