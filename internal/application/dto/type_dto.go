package dto

// CreateTypeRequest données de création d'un type de matière.
type CreateTypeRequest struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
}

// UpdateTypeRequest fusion partielle des champs d'un type.
type UpdateTypeRequest struct {
	Name        *string `json:"name"`
	ShortName   *string `json:"short_name"`
	Description *string `json:"description"`
}
