package services

import "fmt"

// ErrorKind classifies a service failure for HTTP mapping at the request
// boundary. The Code on a ServiceError is the stable machine-readable kind;
// Message is the user-facing display text (Thai where the UI expects it).
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

type ServiceError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrStudentIDRequired = &ServiceError{KindValidation, "student_id_required", "กรุณากรอกรหัสนักศึกษา"}
	ErrAdminRoleRequired = &ServiceError{KindValidation, "admin_role_required", "Admin role information is required"}
	ErrMissingFields     = &ServiceError{KindValidation, "missing_fields", "Missing required fields"}
	ErrSelfCheckIn       = &ServiceError{KindValidation, "self_checkin_not_allowed", "ไม่สามารถเช็คอินตัวเองได้"}

	ErrCredentialsRequired = &ServiceError{KindValidation, "credentials_required", "Username and password are required"}
	ErrNoAdminsData        = &ServiceError{KindValidation, "no_admins_data", "No admins data"}

	ErrLoginFailed = &ServiceError{KindUnauthorized, "login_failed", "เข้าสู่ระบบไม่สำเร็จชื่อหรือรหัสผ่านไม่ถูกต้อง"}

	ErrAdminClubMismatch = &ServiceError{KindForbidden, "admin_club_mismatch", "Admin ไม่ได้อยู่ในชมรมที่ระบุ"}
	ErrAdminRoleMismatch = &ServiceError{KindForbidden, "admin_role_mismatch", "Admin role ไม่ถูกต้อง"}

	ErrAdminNotFound  = &ServiceError{KindNotFound, "admin_not_found", "ไม่พบข้อมูล admin"}
	ErrTicketNotFound = &ServiceError{KindNotFound, "ticket_not_found", "ไม่พบตั๋ว"}

	ErrDuplicateClubCheckIn = &ServiceError{KindConflict, "duplicate_club_checkin", "นักศึกษาได้เช็คอินที่ชมรมนี้แล้ว"}
	ErrDuplicatePairCheckIn = &ServiceError{KindConflict, "duplicate_pair_checkin", "คู่รหัสนี้ได้เช็คอินไปแล้ว"}
)

// ErrStudentTicketNotFound names the student whose ticket is missing, as the
// peer check-in flow reports which side of the pair failed to resolve.
func ErrStudentTicketNotFound(studentID string) *ServiceError {
	return &ServiceError{
		Kind:    KindNotFound,
		Code:    "student_ticket_not_found",
		Message: fmt.Sprintf("ไม่พบข้อมูลตั๋วของนักศึกษา %s", studentID),
	}
}

// AsServiceError extracts a *ServiceError, wrapping anything else as an
// internal error. The caller logs the underlying error; the wire message
// stays generic.
func AsServiceError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ServiceError); ok {
		return se
	}
	return &ServiceError{Kind: KindInternal, Code: "internal_error", Message: "Internal server error"}
}
