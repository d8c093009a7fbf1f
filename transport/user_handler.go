package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-service/model"
)

// CreateUser handler
// @Summary Create user
// @Description Insert a user; the password is stored as a bcrypt hash
// @Tags Users
// @Accept json
// @Produce plain
// @Param request body model.CreateUserRequest true "User"
// @Success 200 {string} string "user created"
// @Failure 409 {string} string "a user with that userid already exists"
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	const location = "POST /users"

	var req model.CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	if err := s.UserApp.CreateUser(r.Context(), &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	writeConfirmation(w, "user created")
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserEntity
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		s.errors.write(w, r, "GET /users", err)
		return
	}

	writeSuccess(w, users)
}

// GetUser handler
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userid path string true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {string} string "user not found"
// @Router /users/{userid} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userid"]

	user, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		s.errors.write(w, r, "GET /users/{userid}", err)
		return
	}

	writeSuccess(w, user)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Users
// @Produce plain
// @Param userid path string true "User ID"
// @Success 200 {string} string "user deleted"
// @Failure 404 {string} string "user not found"
// @Router /users/{userid} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userid"]

	if err := s.UserApp.DeleteUser(r.Context(), userID); err != nil {
		s.errors.write(w, r, "DELETE /users/{userid}", err)
		return
	}

	writeConfirmation(w, "user deleted")
}

// ValidateUser handler
// @Summary Validate credentials
// @Description Check a userid/password pair against the stored hash
// @Tags Users
// @Accept json
// @Produce plain
// @Param request body model.ValidateUserRequest true "Credentials"
// @Success 200 {string} string "valid user"
// @Failure 401 {string} string "invalid userid or password"
// @Failure 429 {string} string "too many requests"
// @Router /users/validate [post]
func (s *RestHandler) ValidateUser(w http.ResponseWriter, r *http.Request) {
	const location = "POST /users/validate"

	var req model.ValidateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	if err := s.UserApp.ValidateUser(r.Context(), &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	writeConfirmation(w, "valid user")
}
