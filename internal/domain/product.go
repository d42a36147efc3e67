package domain

import "time"

type Product struct {
	ID               string          `json:"id"`
	Handle           string          `json:"handle"`
	AvailableForSale bool            `json:"availableForSale"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	DescriptionHTML  string          `json:"descriptionHtml,omitempty"`
	Options          []ProductOption `json:"options"`
	PriceRange       PriceRange      `json:"priceRange"`
	Variants         []Variant       `json:"variants"`
	FeaturedImage    Image           `json:"featuredImage"`
	Images           []Image         `json:"images"`
	SEO              SEO             `json:"seo"`
	Tags             []string        `json:"tags"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is one sellable configuration of a product. Its ID doubles as the
// SKU the vendor cart API keys line items by.
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            Money            `json:"price"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type Collection struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	SEO         SEO       `json:"seo"`
	Path        string    `json:"path"`
	ProductIDs  []string  `json:"-"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

type Page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Body        string    `json:"body"`
	BodySummary string    `json:"bodySummary,omitempty"`
	SEO         SEO       `json:"seo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
