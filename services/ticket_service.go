package services

import (
	"log"
	"strings"
	"unicode"

	"club-checkin-system/models"
)

type TicketService struct {
	Stores Stores
}

func NewTicketService(stores Stores) *TicketService {
	return &TicketService{Stores: stores}
}

// RegisterRequest carries a self- or staff-entered registration. StudentID
// may be omitted: CustomStudentID wins if present, otherwise an ID is
// derived from the name and registration timestamp.
type RegisterRequest struct {
	ID              string `json:"id"`
	StudentID       string `json:"studentID"`
	CustomStudentID string `json:"customStudentID"`
	Name            string `json:"name"`
	Faculty         string `json:"faculty"`
	FoodType        string `json:"foodType"`
	FoodNote        string `json:"foodNote"`
	Group           string `json:"group"`
	RegisteredAt    string `json:"registeredAt"`
	CheckInStatus   bool   `json:"checkInStatus"`
}

// DeriveStudentID resolves the final student ID for a registration. The
// fallback scheme is first 10 characters of the name without spaces, a dash,
// and the last 6 digits of the registration timestamp.
func DeriveStudentID(req *RegisterRequest) (string, error) {
	if req.StudentID != "" {
		return req.StudentID, nil
	}
	if custom := strings.TrimSpace(req.CustomStudentID); custom != "" {
		return custom, nil
	}
	if req.Name == "" || req.RegisteredAt == "" {
		return "", ErrMissingFields
	}

	name := []rune(strings.Join(strings.Fields(req.Name), ""))
	if len(name) > 10 {
		name = name[:10]
	}

	var digits []rune
	for _, r := range req.RegisteredAt {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}

	return string(name) + "-" + string(digits), nil
}

// Register creates or overwrites the ticket with the request's ID. A repeat
// registration with the same ID silently replaces the registration fields
// (the original system's retry-friendly policy) but leaves points, status
// and check-in history untouched; overwrites are logged so data loss is at
// least visible.
func (s *TicketService) Register(req *RegisterRequest) (*models.Ticket, error) {
	if req.ID == "" || req.Name == "" || req.Faculty == "" || req.FoodType == "" || req.RegisteredAt == "" {
		return nil, ErrMissingFields
	}

	studentID, err := DeriveStudentID(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.Stores.Tickets().GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("registration overwrites existing ticket id=%s (studentID %s -> %s)",
			req.ID, existing.StudentID, studentID)
	}

	ticket := &models.Ticket{
		ID:            req.ID,
		StudentID:     studentID,
		Name:          req.Name,
		Faculty:       req.Faculty,
		FoodType:      req.FoodType,
		FoodNote:      req.FoodNote,
		Group:         req.Group,
		RegisteredAt:  req.RegisteredAt,
		CheckInStatus: req.CheckInStatus,
	}
	if err := s.Stores.Tickets().Upsert(ticket); err != nil {
		return nil, err
	}

	return s.Stores.Tickets().GetByID(req.ID)
}

// SetCheckInStatus flips the gate check-in flag on an existing ticket
// (the status-only update form of the registration endpoint).
func (s *TicketService) SetCheckInStatus(id string, status bool) (*models.Ticket, error) {
	ticket, err := s.Stores.Tickets().GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if err := s.Stores.Tickets().SetCheckInStatus(id, status); err != nil {
		return nil, err
	}
	ticket.CheckInStatus = status
	return ticket, nil
}

// CheckTicketResult is the lookup response for the scan flow: either the
// ticket, or permission to register when no ticket exists yet.
type CheckTicketResult struct {
	Ticket        *models.Ticket `json:"ticket,omitempty"`
	AllowRegister bool           `json:"allowRegister,omitempty"`
}

func (s *TicketService) CheckTicket(studentID string) (*CheckTicketResult, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	ticket, err := s.Stores.Tickets().GetByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return &CheckTicketResult{AllowRegister: true}, nil
	}
	return &CheckTicketResult{Ticket: ticket}, nil
}

func (s *TicketService) ListAll() ([]models.Ticket, error) {
	return s.Stores.Tickets().ListAll()
}

func (s *TicketService) GetByStudentID(studentID string) (*models.Ticket, error) {
	return s.Stores.Tickets().GetByStudentID(studentID)
}
