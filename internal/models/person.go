// Package models defines the four persisted record types (users, clients,
// vehicles, rentals), their state enumerations and the rental state machine.
package models

// Role classifies a session and gates which menu operations are reachable.
type Role string

const (
	RoleClient    Role = "cliente"
	RoleAssistant Role = "asistente"
	RoleAdmin     Role = "administrador"
)

// IsStaff reports whether the role may operate on records of other people.
func (r Role) IsStaff() bool {
	return r == RoleAssistant || r == RoleAdmin
}

// User is a staff account (administrador or asistente), keyed by
// identification number.
type User struct {
	IDType   string `json:"id_type"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"user"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Client is a customer record keyed by identification number. Clients can
// log in (role "cliente") and manage their own rentals and profile.
type Client struct {
	IDType     string `json:"id_type"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Username   string `json:"user"`
	Password   string `json:"password"`
	Profession string `json:"profession"`
	Address    string `json:"address"`
	Job        string `json:"job"`
	Role       Role   `json:"role"`
}

// Identity is the acting session: who is logged in and with which role.
type Identity struct {
	ID       string
	Username string
	Name     string
	Role     Role
}
