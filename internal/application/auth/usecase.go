// Package auth gère l'inscription et la connexion des utilisateurs.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	pkgjwt "github.com/tdiallo/papistock-api/pkg/jwt"
)

// JWTConfig paramètres d'émission des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase connexion par email/mot de passe et émission de JWT.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(users repository.UserRepository, jwt JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwt}
}

// Login vérifie les identifiants et émet un jeton portant l'ID et le rôle.
// Email inconnu et mot de passe erroné renvoient la même erreur.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwt.Secret, user.ID, user.Role, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, ID: user.ID, Name: user.Name, Role: user.Role}, nil
}
