package dto

// Envelope est le contrat de réponse uniforme du gateway : toute requête
// reçoit soit {success:true, data}, soit {success:false, error}. Rien ne
// traverse la frontière comme faute non gérée.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK construit une enveloppe de succès.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail construit une enveloppe d'échec avec le message d'erreur.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}
