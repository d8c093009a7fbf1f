package model

// UserEntity represents the user table entity. The password column stores a bcrypt hash.
type UserEntity struct {
	UserID       string `db:"userid" json:"userid"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
}

// CreateUserRequest for POST /users
type CreateUserRequest struct {
	UserID   string `json:"userid" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateUserRequest for POST /users/validate. Missing fields are compared as empty strings.
type ValidateUserRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}
