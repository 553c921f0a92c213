package entity

// Address dirección registrada en el backend (endereco).
type Address struct {
	ID           string
	Street       string
	Neighborhood string
	City         string
	State        string // sigla UF
}

// Client cliente (persona física con CPF o jurídica con CNPJ).
type Client struct {
	ID            string
	Name          string
	CPF           string
	CNPJ          string
	AddressNumber string
	AddressID     string
}

// Supplier proveedor (fornecedor).
type Supplier struct {
	ID            string
	Name          string
	CNPJ          string
	AddressNumber string
	AddressID     string
}
