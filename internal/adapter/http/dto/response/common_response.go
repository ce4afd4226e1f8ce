package response

import "gestao_obras/internal/domain/entities"

type MessageResponse struct {
	Message string `json:"message"`
}

type IdentityResponse struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func FromIdentity(id entities.Identity) IdentityResponse {
	return IdentityResponse{UID: id.UID, Email: id.Email, Name: id.Name, Picture: id.Picture}
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
