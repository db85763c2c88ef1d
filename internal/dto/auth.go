package dto

type ACALoginRequestDTO struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	ACAID       string `json:"aca_id"`
}

type StaffLoginRequestDTO struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type DevLoginRequestDTO struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
