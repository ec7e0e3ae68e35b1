package dto

// DTOs de los datos de referencia. CRUD plano: solo existen como claves
// foráneas para el motor de órdenes.

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type LocationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CounterpartyRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CounterpartyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
