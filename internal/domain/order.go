package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FallbackProduct  = "Produit non trouvé"
	FallbackAddress  = "Adresse non disponible"
	FallbackUser     = "Utilisateur non trouvé"
	FallbackEmail    = "Non disponible"
	FallbackOption   = "Non spécifié"
	FallbackDate     = "Date non disponible"
	FallbackNoItems  = "Aucun article trouvé"
	FallbackNoOrders = "Aucune commande trouvée."
)

// UserRef is the order's user reference, populated by the API. A bare id is accepted too.
type UserRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *UserRef) UnmarshalJSON(b []byte) error {
	if id, ok := bareID(b); ok {
		*r = UserRef{ID: id}
		return nil
	}
	type plain UserRef
	return json.Unmarshal(b, (*plain)(r))
}

type ProductRef struct {
	ID     string   `json:"_id"`
	Name   string   `json:"name"`
	Images []string `json:"images,omitempty"`
}

func (r *ProductRef) UnmarshalJSON(b []byte) error {
	if id, ok := bareID(b); ok {
		*r = ProductRef{ID: id}
		return nil
	}
	type plain ProductRef
	return json.Unmarshal(b, (*plain)(r))
}

func bareID(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '"' {
		return "", false
	}
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		return "", false
	}
	return id, true
}

type OrderCustomization struct {
	Position          string     `json:"position"`
	CustomizationSize StringList `json:"customizationSize"`
	ImageURL          string     `json:"imageUrl"`
}

type OrderItem struct {
	Product              *ProductRef          `json:"productId"`
	Quantity             int                  `json:"quantity"`
	Price                decimal.Decimal      `json:"price"`
	Color                string               `json:"color,omitempty"`
	Size                 string               `json:"size,omitempty"`
	CustomizationOptions []OrderCustomization `json:"customizationOptions,omitempty"`
}

type ShippingAddress struct {
	Name       string     `json:"name"`
	Street     string     `json:"street"`
	City       string     `json:"city"`
	PostalCode FlexString `json:"postalCode"`
}

type Order struct {
	ID              string           `json:"_id"`
	User            *UserRef         `json:"userId"`
	Items           []OrderItem      `json:"items"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
	CreatedAt       *time.Time       `json:"createdAt"`
}

// OrderLookup is the answer of GET /api/orders/{id}: one order, or every order of a user.
type OrderLookup struct {
	Order  *Order
	Orders []Order
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]Order, error)
	LookupOrders(ctx context.Context, id string) (*OrderLookup, error)
}

func (i OrderItem) ProductName() string {
	if i.Product == nil {
		return FallbackProduct
	}
	if i.Product.Name == "" {
		return i.Product.ID
	}
	return i.Product.Name
}

// Label is the one line summary used in the orders table.
func (i OrderItem) Label() string {
	if i.Product == nil {
		return FallbackProduct
	}
	return fmt.Sprintf("%s (Quantité: %d)", i.ProductName(), i.Quantity)
}

func (i OrderItem) ColorOrFallback() string {
	if i.Color == "" {
		return FallbackOption
	}
	return i.Color
}

func (i OrderItem) SizeOrFallback() string {
	if i.Size == "" {
		return FallbackOption
	}
	return i.Size
}

func (o Order) UserID() string {
	if o.User == nil {
		return ""
	}
	return o.User.ID
}

func (o Order) UserName() string {
	if o.User == nil {
		return FallbackUser
	}
	return strings.TrimSpace(o.User.FirstName + " " + o.User.LastName)
}

func (o Order) UserEmail() string {
	if o.User == nil || o.User.Email == "" {
		return FallbackEmail
	}
	return o.User.Email
}

// ShippingLine flattens the shipping address into one line.
func (o Order) ShippingLine() string {
	a := o.ShippingAddress
	if a == nil {
		return FallbackAddress
	}
	return fmt.Sprintf("%s, %s, %s, %s", a.Name, a.Street, a.City, a.PostalCode)
}
