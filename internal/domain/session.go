package domain

// Role is the closed set of operator roles. The backend encodes roles as bare
// integers (1=Admin, 2=Staff); anything else maps to RoleUnknown, which is
// treated as the most restricted role everywhere permissions are derived.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleStaff
)

// ParseRole maps the backend's integer role code onto the closed enum.
func ParseRole(code int) Role {
	switch code {
	case 1:
		return RoleAdmin
	case 2:
		return RoleStaff
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// Session holds the identity established at login. It is immutable for the
// process lifetime: there is no refresh, and logout simply discards it.
type Session struct {
	Role        Role
	Company     string
	Username    string
	AccessToken string // optional bearer credential; empty means headerless requests
}
