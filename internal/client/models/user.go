package models

// Role of an authenticated user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLehrkraft Role = "lehrkraft"
	RoleUser      Role = "user"
)

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	SchoolID   string `json:"school_id,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
}

// UserPatch carries a shallow partial update of a User.
// Nil fields are left untouched by Merge.
type UserPatch struct {
	Email      *string `json:"email,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	SchoolID   *string `json:"school_id,omitempty"`
	SchoolName *string `json:"school_name,omitempty"`
}

// Merge returns a copy of u with the non-nil fields of p applied.
func (u User) Merge(p UserPatch) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.SchoolID != nil {
		u.SchoolID = *p.SchoolID
	}
	if p.SchoolName != nil {
		u.SchoolName = *p.SchoolName
	}
	return u
}
