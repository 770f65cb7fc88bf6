package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"news-app/backend/app/db"
	"news-app/backend/app/dto"
	"news-app/backend/app/models"
	"news-app/backend/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgUsernameTaken  = "Error: Username is already taken!"
	msgEmailTaken     = "Error: Email is already in use!"
	msgBadCredentials = "Bad credentials"
)

type UserService struct {
	users *repo.UserRepository
	roles *repo.RoleRepository
}

func NewUserService(users *repo.UserRepository, roles *repo.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// EnsureAdmin creates the bootstrap admin account unless the username exists.
func (s *UserService) EnsureAdmin(username, email, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.register(username, email, password, nil, []models.RoleName{models.RoleAdmin})
	return err
}

func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrUnauthenticated, msgBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, newError(ErrUnauthenticated, msgBadCredentials)
	}
	return u, nil
}

// checkAvailable rejects a username or email held by a user other than selfID.
func (s *UserService) checkAvailable(username, email string, selfID uint) error {
	if u, err := s.users.FindByUsername(username); err == nil && u.ID != selfID {
		return newError(ErrDuplicate, msgUsernameTaken)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if u, err := s.users.FindByEmail(email); err == nil && u.ID != selfID {
		return newError(ErrDuplicate, msgEmailTaken)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// duplicateError turns a unique index violation that slipped past
// checkAvailable (a concurrent insert) into the matching duplicate message.
func (s *UserService) duplicateError(err error, username, email string, selfID uint) error {
	if !db.IsDuplicateKey(err) {
		return err
	}
	if dup := s.checkAvailable(username, email, selfID); dup != nil {
		return dup
	}
	return newError(ErrDuplicate, "Error: Username or email already exists!")
}

func (s *UserService) resolveRoles(names []models.RoleName) ([]models.Role, error) {
	roles, err := s.roles.FindByNames(names)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		// the lookup table is seeded on migrate; a missing row is a broken install
		return nil, fmt.Errorf("roles %v: found %d of %d", names, len(roles), len(names))
	}
	return roles, nil
}

func (s *UserService) register(username, email, password string, dob *time.Time, names []models.RoleName) (*models.User, error) {
	if err := s.checkAvailable(username, email, 0); err != nil {
		return nil, err
	}
	roles, err := s.resolveRoles(names)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: string(hash), DateOfBirth: dob, Roles: roles}
	if err := s.users.Create(u); err != nil {
		return nil, s.duplicateError(err, username, email, 0)
	}
	return u, nil
}

// CreateUser is the admin path: roles are mandatory and must be known.
func (s *UserService) CreateUser(req dto.UserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, validationError("password", "must not be blank")
	}
	names, err := AdminRoles(req.Roles)
	if err != nil {
		return nil, err
	}
	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, validationError("dateOfBirth", "must be a date formatted as "+dto.DateLayout)
	}
	u, err := s.register(req.Username, req.Email, req.Password, dob, names)
	if err != nil {
		return nil, err
	}
	return userToDTO(u), nil
}

func (s *UserService) GetByID(id uint) (*dto.UserResponse, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, notFound(err, "User not found with id: %d", id)
	}
	return userToDTO(u), nil
}

func (s *UserService) GetByEmail(email string) (*dto.UserResponse, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, notFound(err, "User not found with email: %s", email)
	}
	return userToDTO(u), nil
}

// CurrentUser loads the account behind an authenticated username.
func (s *UserService) CurrentUser(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return u, nil
}

func (s *UserService) List() ([]dto.UserResponse, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *userToDTO(&users[i]))
	}
	return out, nil
}

// UpdateUser overwrites username, email and date of birth, replaces the role
// set, and rehashes the password only when a non-blank one is given.
func (s *UserService) UpdateUser(id uint, req dto.UserRequest) (*dto.UserResponse, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, notFound(err, "User not found with id: %d", id)
	}
	names, err := AdminRoles(req.Roles)
	if err != nil {
		return nil, err
	}
	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, validationError("dateOfBirth", "must be a date formatted as "+dto.DateLayout)
	}
	if err := s.checkAvailable(req.Username, req.Email, u.ID); err != nil {
		return nil, err
	}
	roles, err := s.resolveRoles(names)
	if err != nil {
		return nil, err
	}

	u.Username = req.Username
	u.Email = req.Email
	u.DateOfBirth = dob
	if strings.TrimSpace(req.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.Roles = roles
	if err := s.users.Save(u); err != nil {
		return nil, s.duplicateError(err, req.Username, req.Email, u.ID)
	}
	return userToDTO(u), nil
}

// DeleteUser hard deletes the account along with the articles it wrote.
func (s *UserService) DeleteUser(id uint) error {
	affected, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return newError(ErrNotFound, "User not found with id: %d", id)
	}
	return nil
}

func userToDTO(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: dto.FormatDate(u.DateOfBirth),
		Roles:       u.RoleNames(),
	}
}
