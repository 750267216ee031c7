package client

import "go-hrfine/internal/shared/patch"

type CreateClientRequest struct {
	ClientName     string `json:"client_name" binding:"required,max=50"`
	ClientCode     string `json:"client_code" binding:"required,max=20"`
	ClientType     uint   `json:"client_type" binding:"required"`
	ClientEmail    string `json:"client_email" binding:"required,email,max=100"`
	ContactAddress string `json:"contact_address" binding:"required,max=1000"`
	ClientTel      string `json:"client_tel" binding:"required,max=15"`
}

type UpdateClientRequest struct {
	ClientName     patch.Field[string] `json:"client_name"`
	ClientCode     patch.Field[string] `json:"client_code"`
	ClientType     patch.Field[uint]   `json:"client_type"`
	ClientEmail    patch.Field[string] `json:"client_email"`
	ContactAddress patch.Field[string] `json:"contact_address"`
	ClientTel      patch.Field[string] `json:"client_tel"`
}

type GenerateCodeRequest struct {
	ClientType uint `json:"client_type" binding:"required"`
}

type GenerateCodeResponse struct {
	ClientCode string `json:"client_code"`
}

type ClientResponse struct {
	ClientID       uint   `json:"client_id"`
	ClientCode     string `json:"client_code"`
	ClientName     string `json:"client_name"`
	ClientType     uint   `json:"client_type"`
	ProjectType    string `json:"project_type"`
	ClientEmail    string `json:"client_email"`
	ContactAddress string `json:"contact_address"`
	ClientTel      string `json:"client_tel"`
}

func toResponse(r *Row) *ClientResponse {
	return &ClientResponse{
		ClientID:       r.ID,
		ClientCode:     r.ClientCode,
		ClientName:     r.ClientName,
		ClientType:     r.ClientType,
		ProjectType:    r.ProjectType,
		ClientEmail:    r.ClientEmail,
		ContactAddress: r.ContactAddress,
		ClientTel:      r.ClientTel,
	}
}
