package entity

import "time"

// ProductType represents the kind of digital good a product delivers.
type ProductType string

const (
	// ProductTypeTemplate is a downloadable template.
	ProductTypeTemplate ProductType = "template"
	// ProductTypeAccount is a set of account credentials.
	ProductTypeAccount ProductType = "account"
	// ProductTypeLink is a private link.
	ProductTypeLink ProductType = "link"
	// ProductTypeVoucher is a voucher code.
	ProductTypeVoucher ProductType = "voucher"
)

// String returns the string representation of the ProductType.
func (t ProductType) String() string {
	return string(t)
}

// Label returns the human readable name of the ProductType.
func (t ProductType) Label() string {
	switch t {
	case ProductTypeTemplate:
		return "Template"
	case ProductTypeAccount:
		return "Account"
	case ProductTypeLink:
		return "Link"
	case ProductTypeVoucher:
		return "Voucher"
	default:
		return string(t)
	}
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeTemplate, ProductTypeAccount, ProductTypeLink, ProductTypeVoucher:
		return true
	default:
		return false
	}
}

// Product is a digital product listed by the seller.
type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ProductType ProductType `json:"product_type"`
	Content     string      `json:"content"` // Delivered payload (template URL, account, link, voucher code).
	IsActive    bool        `json:"is_active"`
	AIEnabled   bool        `json:"ai_enabled"`
	OwnerID     int64       `json:"owner_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// CreateProductInput is the payload for creating a product.
type CreateProductInput struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
	ProductType ProductType `json:"product_type" validate:"required,oneof=template account link voucher"`
	Content     string      `json:"content" validate:"required"`
	IsActive    *bool       `json:"is_active,omitempty"`
	AIEnabled   *bool       `json:"ai_enabled,omitempty"`
}

// UpdateProductInput is the payload for updating a product; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	ProductType *ProductType `json:"product_type,omitempty"`
	Content     *string      `json:"content,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
	AIEnabled   *bool        `json:"ai_enabled,omitempty"`
}
