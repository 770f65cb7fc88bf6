package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=20"`
	Email       string   `json:"email" validate:"required,email,max=50"`
	Password    string   `json:"password" validate:"required,min=6,max=40"`
	DateOfBirth string   `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Role        []string `json:"role"`
}

type JwtResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ID           uint     `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// LogoutRequest is optional; a refresh token given here is revoked together
// with the access token of the request.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type MessageResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
