package dtos

import "pharmaevents.app/internal/models"

type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ThemeUpdatedResponse struct {
	Success    bool   `json:"success"`
	ThemeColor string `json:"theme_color"`
}

type LogoUploadedResponse struct {
	Success bool   `json:"success"`
	LogoURL string `json:"logo_url"`
	Message string `json:"message"`
}

type TaxonomyCreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

type UserCreatedResponse struct {
	Success bool        `json:"success"`
	ID      int64       `json:"id"`
	Email   string      `json:"email"`
	Role    models.Role `json:"role"`
}

type UserListResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

type BulkUsersResponse struct {
	Success bool     `json:"success"`
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
