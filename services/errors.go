package services

import "errors"

// User-facing failure kinds of the reservation flow. Message text is
// surfaced verbatim to the mobile client, hence the French.
var (
	// ErrAllFieldsRequired is the single undifferentiated validation failure
	// the wizard reports, original wording included.
	ErrAllFieldsRequired = errors.New("Tout les champs sont récquis")

	// ErrAuthenticationRequired refuses any submission without an
	// authenticated client identity, before anything is persisted.
	ErrAuthenticationRequired = errors.New("Veuillez vous connecter")

	// ErrNotFound signals a detail fetch for a reservation that does not
	// exist (or was removed).
	ErrNotFound = errors.New("Réservation non trouvée !")

	// ErrTimeout is the distinct timed-out failure; mutating calls are not
	// retried automatically.
	ErrTimeout = errors.New("La requête a expiré. Réessayez.")
)

// SubmissionError carries a server-side rejection. The message is the
// server-supplied text when available, else a generic fallback.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	if e.Message == "" {
		return "Réservation non aboutie !"
	}
	return e.Message
}
