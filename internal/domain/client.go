package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSupplier Role = "SUPPLIER"
	RoleClient   Role = "CLIENT"
)

// UnknownClientName is the sentinel shown when a client's name cannot be
// resolved. The dashboards render it verbatim.
const UnknownClientName = "Desconocido"

type Client struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DisplayName builds "firstName lastName", falls back to the first name
// alone, and finally to the unknown sentinel.
func (c *Client) DisplayName() string {
	switch {
	case c == nil:
		return UnknownClientName
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return UnknownClientName
	}
}
