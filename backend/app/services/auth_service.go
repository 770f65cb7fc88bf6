package services

import (
	"context"
	"errors"

	"news-app/backend/app/dto"
	jwtutil "news-app/backend/app/jwt"
	"news-app/backend/app/tokenstore"
	"news-app/backend/global"

	"gorm.io/gorm"
)

const (
	msgInvalidRefresh = "Invalid refresh token"
	tokenTypeBearer   = "Bearer"
)

type AuthService struct {
	users  *UserService
	signer *jwtutil.Signer
	store  tokenstore.Store
}

// NewAuthService wires the auth flows. A nil store means logout does not
// revoke anything.
func NewAuthService(users *UserService, signer *jwtutil.Signer, store tokenstore.Store) *AuthService {
	if store == nil {
		store = tokenstore.Noop{}
	}
	return &AuthService{users: users, signer: signer, store: store}
}

// Login checks the password hash and issues an access/refresh token pair
// carrying the username and roles.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.JwtResponse, error) {
	u, err := s.users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	roles := u.RoleNames()
	access, err := s.signer.SignAccess(u.ID, u.Username, roles)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signer.SignRefresh(u.ID, u.Username, roles)
	if err != nil {
		return nil, err
	}
	return &dto.JwtResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenTypeBearer,
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Roles:        roles,
	}, nil
}

// Signup registers a user. The username is checked before the email, each
// with its own message.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.MessageResponse, error) {
	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, validationError("dob", "must be a date formatted as "+dto.DateLayout)
	}
	if _, err := s.users.register(req.Username, req.Email, req.Password, dob, SignupRoles(req.Role)); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "User registered successfully!"}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is returned to nobody and stays valid.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, newError(ErrUnauthenticated, msgInvalidRefresh)
	}
	claims, err := s.signer.ParseType(req.RefreshToken, jwtutil.TypeRefresh)
	if err != nil {
		global.Logger.Debug().Err(err).Msg("refresh token rejected")
		return nil, newError(ErrUnauthenticated, msgInvalidRefresh)
	}
	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, newError(ErrUnauthenticated, msgInvalidRefresh)
	}
	// roles are re-read so a demoted user does not keep stale authorities
	u, err := s.users.users.FindByUsername(claims.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrUnauthenticated, msgInvalidRefresh)
	}
	if err != nil {
		return nil, err
	}
	access, err := s.signer.SignAccess(u.ID, u.Username, u.RoleNames())
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access, TokenType: tokenTypeBearer}, nil
}

// Logout revokes the caller's access token and, when supplied, its refresh
// token. With the no-op store this only acknowledges the request.
func (s *AuthService) Logout(ctx context.Context, access *jwtutil.Claims, refreshToken string) (*dto.MessageResponse, error) {
	if access != nil {
		if err := s.store.Revoke(ctx, access.ID, s.signer.TTL(access)); err != nil {
			return nil, err
		}
	}
	if refreshToken != "" {
		if rc, err := s.signer.ParseType(refreshToken, jwtutil.TypeRefresh); err == nil {
			if err := s.store.Revoke(ctx, rc.ID, s.signer.TTL(rc)); err != nil {
				return nil, err
			}
		}
	}
	return &dto.MessageResponse{Message: "User logged out successfully!"}, nil
}

// IsRevoked reports whether the token id was revoked by a logout.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.store.IsRevoked(ctx, jti)
}
