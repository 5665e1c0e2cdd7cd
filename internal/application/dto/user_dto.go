package dto

// CreateUserRequest données de création d'un utilisateur (action admin).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | staff
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest champs modifiables d'un utilisateur ; les champs nil sont
// laissés tels quels (fusion partielle).
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// LoginRequest identifiants de connexion.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse jeton émis après login.
type AuthResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
