package dto

// CreateLocationRequest données de création d'un emplacement.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLocationRequest fusion partielle des champs d'un emplacement.
type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
