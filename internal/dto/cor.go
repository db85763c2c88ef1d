package dto

type CORRequestDTO struct {
	InstitutionEmail string `json:"institution_email"`
	CustomMessage    string `json:"custom_message"`
}

type CORResponseDTO struct {
	Status      string `json:"status"`
	ConfirmedBy string `json:"confirmed_by"`
	Notes       string `json:"notes"`
}
