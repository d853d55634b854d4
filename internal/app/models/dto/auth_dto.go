package dto

// LoginRequest is the login payload for the admin console and portals
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	Role        string `json:"role"`
}

// UnreadCountResponse is the dashboard's unread notification counter
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
