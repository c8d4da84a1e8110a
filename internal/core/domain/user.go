package domain

// UserRole describes the back-office role assigned to a user.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CAISSIER"
	RoleStock   UserRole = "MAGASINIER"
	RoleHR      UserRole = "GRH"
)

// User represents an application user able to authenticate.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
