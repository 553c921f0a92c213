package dto

// AddressResponse dirección registrada.
type AddressResponse struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CreateClientRequest body para POST /api/clients. CPF o CNPJ.
type CreateClientRequest struct {
	Name          string `json:"name"`
	CPF           string `json:"cpf"`
	CNPJ          string `json:"cnpj"`
	AddressID     string `json:"address_id"`
	AddressNumber string `json:"address_number"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CPF           string `json:"cpf,omitempty"`
	CNPJ          string `json:"cnpj,omitempty"`
	AddressID     string `json:"address_id,omitempty"`
	AddressNumber string `json:"address_number,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	CNPJ          string `json:"cnpj"`
	AddressID     string `json:"address_id"`
	AddressNumber string `json:"address_number"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CNPJ          string `json:"cnpj,omitempty"`
	AddressID     string `json:"address_id,omitempty"`
	AddressNumber string `json:"address_number,omitempty"`
}
