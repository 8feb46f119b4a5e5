package models

// RoleViewer is the role every self-registered user receives.
const RoleViewer = "viewer"

// User is a registered account. It is created once by registration and never
// mutated afterwards. Password is kept exactly as supplied.
type User struct {
	UserName string
	Email    string
	Password string
	Role     string
}

// Profile is the public view of a User; it never carries the password.
type Profile struct {
	UserName string
	Email    string
	Role     string
}

// Profile returns the public view of u.
func (u *User) Profile() *Profile {
	return &Profile{UserName: u.UserName, Email: u.Email, Role: u.Role}
}
