package domain

import (
	"errors"
	"strings"
)

const (
	MsgCategoryNameRequired = "Le nom de la catégorie ne peut pas être vide."
	MsgProductNameRequired  = "Le nom du produit est requis."
	MsgPriceInvalid         = "Le prix doit être un nombre positif ou nul."
	MsgQuantityInvalid      = "La quantité doit être un entier positif."
	MsgCategoryRequired     = "Merci de sélectionner une catégorie."
	MsgDiscountRequired     = "Le prix réduit est requis pour une promotion."
	MsgDiscountPositive     = "Le prix réduit doit être positif."
	MsgDiscountBelowPrice   = "Le prix réduit doit être inférieur au prix normal."
	MsgSizeUnknown          = "Taille inconnue."
	MsgEmailRequired        = "L'email est requis."
	MsgPasswordRequired     = "Le mot de passe est requis."
	MsgCreditsInvalid       = "Les crédits doivent être un nombre."
)

var ErrInvalidID = errors.New("invalid id")

type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects every rule a form broke, in the order the rules were checked.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, " ")
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// For returns the messages attached to one field.
func (v ValidationErrors) For(field string) []string {
	var msgs []string
	for _, fe := range v {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}

func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

func ValidID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, "/?#") {
		return ErrInvalidID
	}
	return nil
}
