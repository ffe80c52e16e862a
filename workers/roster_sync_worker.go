package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"club-checkin-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterSyncClient pulls registration changes from the faculty registration
// system so tickets created there show up here without re-entry. Only
// registration fields are synced; point and check-in state stay owned by the
// check-in engine.
type RosterSyncClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	DB         *gorm.DB
}

func NewRosterSyncClient(db *gorm.DB) *RosterSyncClient {
	baseURL := os.Getenv("ROSTER_SERVICE_URL")
	if baseURL == "" {
		log.Fatal("ROSTER_SERVICE_URL environment variable is required")
	}
	token := os.Getenv("ROSTER_SERVICE_TOKEN")
	if token == "" {
		log.Fatal("ROSTER_SERVICE_TOKEN environment variable is required for roster sync")
	}

	return &RosterSyncClient{
		BaseURL: baseURL,
		Token:   token,
		DB:      db,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RosterSyncClient) GetChangedRegistrations(ctx context.Context, since time.Time) ([]models.Ticket, error) {
	since = since.UTC()

	u, err := url.Parse(fmt.Sprintf("%s/api/v1/registrations", c.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("since", since.Format(time.RFC3339))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call roster service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("roster service returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Registrations []models.Ticket `json:"registrations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode roster service response: %w", err)
	}

	return response.Registrations, nil
}

// PollRoster periodically upserts changed registrations into the ticket
// table. The conflict target is student_id and only registration columns are
// assigned, so a re-sync can never touch points or check-in history.
func PollRoster(ctx context.Context, client *RosterSyncClient, pollInterval time.Duration) {
	log.Println("Starting roster polling...")
	lastSyncTime := time.Now().UTC().Add(-24 * time.Hour)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Roster polling stopped.")
			return
		case <-ticker.C:
			tickStart := time.Now().UTC()
			registrations, err := client.GetChangedRegistrations(ctx, lastSyncTime)
			if err != nil {
				log.Printf("Error polling roster: %v", err)
				continue
			}

			count := len(registrations)
			if count == 0 {
				continue
			}

			if err := client.DB.Clauses(
				clause.OnConflict{
					Columns: []clause.Column{{Name: "student_id"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"name",
						"faculty",
						"food_type",
						"food_note",
						"student_group",
						"registered_at",
						"updated_at",
					}),
				},
			).Omit("ClubCheckIns").Create(&registrations).Error; err != nil {
				log.Printf("Failed to upsert %d registration(s): %v", count, err)
				// lastSyncTime stays put, retry the same window next tick
				continue
			}

			lastSyncTime = tickStart
			log.Printf("Upserted %d registration(s) from roster service.", count)
		}
	}
}
