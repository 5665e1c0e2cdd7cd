package dto

// CreateSupplierRequest données de création d'un fournisseur.
type CreateSupplierRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Origin    string `json:"origin"`
}

// UpdateSupplierRequest fusion partielle des champs d'un fournisseur.
type UpdateSupplierRequest struct {
	Name      *string `json:"name"`
	ShortName *string `json:"short_name"`
	Origin    *string `json:"origin"`
}
