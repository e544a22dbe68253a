package domain

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         string     `json:"_id,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Password   string     `json:"password,omitempty"`
	Phone      FlexString `json:"phone"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	Country    string     `json:"country"`
	CodePostal FlexString `json:"codePostal"`
	Credits    Amount     `json:"credits"`
	IsVerified bool       `json:"isVerified,omitempty"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateUser(ctx context.Context, id string, user *User) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserForm struct {
	FirstName  string `form:"firstName"`
	LastName   string `form:"lastName"`
	Email      string `form:"email"`
	Password   string `form:"password"`
	Phone      string `form:"phone"`
	Address    string `form:"address"`
	City       string `form:"city"`
	Country    string `form:"country"`
	CodePostal string `form:"codePostal"`
	Credits    string `form:"credits"`
}

// UserFormFrom prefills the update form. The password stays empty.
func UserFormFrom(u *User) UserForm {
	return UserForm{
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      string(u.Phone),
		Address:    u.Address,
		City:       u.City,
		Country:    u.Country,
		CodePostal: string(u.CodePostal),
		Credits:    u.Credits.String(),
	}
}

// Parse builds the user payload. Creation additionally requires an email and a password;
// updates submit whatever is present.
func (f UserForm) Parse(create bool) (*User, error) {
	var errs ValidationErrors

	credits := NewAmount(decimal.Zero)
	if c := strings.TrimSpace(f.Credits); c != "" {
		d, err := decimal.NewFromString(c)
		if err != nil {
			errs.add("credits", MsgCreditsInvalid)
		} else {
			credits = NewAmount(d)
		}
	}
	if create {
		if strings.TrimSpace(f.Email) == "" {
			errs.add("email", MsgEmailRequired)
		}
		if f.Password == "" {
			errs.add("password", MsgPasswordRequired)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &User{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Password:   f.Password,
		Phone:      FlexString(f.Phone),
		Address:    f.Address,
		City:       f.City,
		Country:    f.Country,
		CodePostal: FlexString(f.CodePostal),
		Credits:    credits,
	}, nil
}
