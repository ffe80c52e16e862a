// services/qrcode_service.go
package services

import (
	"github.com/skip2/go-qrcode"
)

// TicketQRCode renders the QR a student presents at booths and to peers.
// The payload is the bare student ID; both scan flows resolve it themselves.
func TicketQRCode(studentID string, size int) ([]byte, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(studentID, qrcode.Medium, size)
}
