package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound     = errors.New("enregistrement introuvable")
	ErrInvalidInput = errors.New("entrée invalide")
	ErrDuplicate    = errors.New("enregistrement dupliqué")
	ErrDuplicateSKU = errors.New("le SKU existe déjà")
	ErrDuplicateEmail = errors.New("l'email est déjà enregistré")
	ErrConflict     = errors.New("conflit avec l'état actuel")
	ErrReferenced   = errors.New("enregistrement référencé par d'autres données")
	ErrUnauthorized = errors.New("non autorisé")
	ErrUnknownTable = errors.New("table inconnue")
	ErrUnknownFormat = errors.New("format inconnu")
)
