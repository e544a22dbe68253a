package domain

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ProductSizes = []string{"XS", "S", "M", "L", "XL", "2XL"}

type CustomizationOption struct {
	Position          string     `json:"position"`
	CustomizationSize StringList `json:"customizationSize"`
}

type Product struct {
	ID                   string                `json:"_id,omitempty"`
	Name                 string                `json:"name"`
	Description          string                `json:"description"`
	Characteristics      string                `json:"characteristics"`
	Price                decimal.Decimal       `json:"price"`
	DiscountPrice        Amount                `json:"discountPrice"`
	IsPromo              bool                  `json:"isPromo"`
	Quantity             int                   `json:"quantity"`
	Images               []string              `json:"images"`
	Colors               []string              `json:"colors"`
	Sizes                []string              `json:"sizes"`
	CustomizationOptions []CustomizationOption `json:"customizationOptions"`
	Category             CategoryRefs          `json:"category"`
}

// ProductPage is one page of the product collection.
type ProductPage struct {
	Products   []Product
	TotalPages int
}

type ProductRepository interface {
	ListProducts(ctx context.Context, page, limit int) (*ProductPage, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, id string, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductForm holds the raw product form fields exactly as they were entered.
type ProductForm struct {
	Name               string   `form:"name"`
	Description        string   `form:"description"`
	Characteristics    string   `form:"characteristics"`
	Price              string   `form:"price"`
	DiscountPrice      string   `form:"discountPrice"`
	IsPromo            bool     `form:"isPromo"`
	Quantity           string   `form:"quantity"`
	Images             []string `form:"images"`
	Colors             string   `form:"colors"`
	Sizes              []string `form:"sizes"`
	Positions          []string `form:"customizationPosition"`
	CustomizationSizes []string `form:"customizationSize"`
	Category           string   `form:"category"`
}

// CustomizationSlot is one editable customization row of the product form.
type CustomizationSlot struct {
	Position string
	Sizes    string
}

func NewProductForm() ProductForm {
	return ProductForm{
		Quantity:           "1",
		Images:             []string{""},
		Positions:          []string{""},
		CustomizationSizes: []string{""},
	}
}

func ProductFormFrom(p *Product) ProductForm {
	f := ProductForm{
		Name:            p.Name,
		Description:     p.Description,
		Characteristics: p.Characteristics,
		Price:           p.Price.String(),
		DiscountPrice:   p.DiscountPrice.String(),
		IsPromo:         p.IsPromo,
		Quantity:        strconv.Itoa(p.Quantity),
		Images:          slices.Clone(p.Images),
		Colors:          strings.Join(p.Colors, ", "),
		Sizes:           slices.Clone(p.Sizes),
		Category:        p.Category.First(),
	}
	if len(f.Images) == 0 {
		f.Images = []string{""}
	}
	for _, opt := range p.CustomizationOptions {
		f.Positions = append(f.Positions, opt.Position)
		f.CustomizationSizes = append(f.CustomizationSizes, opt.CustomizationSize.String())
	}
	if len(f.Positions) == 0 {
		f.Positions = []string{""}
		f.CustomizationSizes = []string{""}
	}
	return f
}

func (f *ProductForm) AddImage() {
	f.Images = append(f.Images, "")
}

func (f *ProductForm) AddCustomization() {
	slots := f.Customizations()
	f.Positions = make([]string, 0, len(slots)+1)
	f.CustomizationSizes = make([]string, 0, len(slots)+1)
	for _, s := range slots {
		f.Positions = append(f.Positions, s.Position)
		f.CustomizationSizes = append(f.CustomizationSizes, s.Sizes)
	}
	f.Positions = append(f.Positions, "")
	f.CustomizationSizes = append(f.CustomizationSizes, "")
}

// Customizations zips positions and size lists into rows.
func (f ProductForm) Customizations() []CustomizationSlot {
	n := max(len(f.Positions), len(f.CustomizationSizes))
	slots := make([]CustomizationSlot, n)
	for i := range slots {
		if i < len(f.Positions) {
			slots[i].Position = f.Positions[i]
		}
		if i < len(f.CustomizationSizes) {
			slots[i].Sizes = f.CustomizationSizes[i]
		}
	}
	return slots
}

func (f ProductForm) HasSize(size string) bool {
	return slices.Contains(f.Sizes, size)
}

// Parse validates the form and builds the product payload.
// Every broken rule is reported, not only the first one.
func (f ProductForm) Parse() (*Product, error) {
	var errs ValidationErrors

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs.add("name", MsgProductNameRequired)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	priceOK := err == nil && !price.IsNegative()
	if !priceOK {
		errs.add("price", MsgPriceInvalid)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil || quantity <= 0 {
		errs.add("quantity", MsgQuantityInvalid)
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		errs.add("category", MsgCategoryRequired)
	}

	var discount Amount
	if f.IsPromo {
		d, err := decimal.NewFromString(strings.TrimSpace(f.DiscountPrice))
		if err != nil {
			errs.add("discountPrice", MsgDiscountRequired)
		} else {
			if !d.IsPositive() {
				errs.add("discountPrice", MsgDiscountPositive)
			}
			if priceOK && !d.LessThan(price) {
				errs.add("discountPrice", MsgDiscountBelowPrice)
			}
			discount = NewAmount(d)
		}
	}

	for _, s := range f.Sizes {
		if !slices.Contains(ProductSizes, s) {
			errs.add("sizes", MsgSizeUnknown)
			break
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	images := slices.Clone(f.Images)
	if images == nil {
		images = []string{}
	}
	sizes := slices.Clone(f.Sizes)
	if sizes == nil {
		sizes = []string{}
	}
	slots := f.Customizations()
	options := make([]CustomizationOption, 0, len(slots))
	for _, s := range slots {
		options = append(options, CustomizationOption{
			Position:          s.Position,
			CustomizationSize: SplitList(s.Sizes),
		})
	}

	return &Product{
		Name:                 name,
		Description:          f.Description,
		Characteristics:      f.Characteristics,
		Price:                price,
		DiscountPrice:        discount,
		IsPromo:              f.IsPromo,
		Quantity:             quantity,
		Images:               images,
		Colors:               SplitList(f.Colors),
		Sizes:                sizes,
		CustomizationOptions: options,
		Category:             CategoryRefs{category},
	}, nil
}
