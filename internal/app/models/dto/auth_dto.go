package dto

// LoginRequest represents an admin or student login request.
// Students sign in with their student number, admins with their email;
// exactly one of the two identifiers must be set.
type LoginRequest struct {
	Email         string `json:"email,omitempty" example:"admin@alqalam.edu.ye"`
	StudentNumber string `json:"studentNumber,omitempty" example:"PH2021045"`
	Password      string `json:"password" binding:"required"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
