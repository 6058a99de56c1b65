package quote

import "time"

const (
	VATRate         = 0.16
	DefaultPosition = "Sales Engineer"
	DefaultIntro    = "Thank you for choosing Colcal Machinery. Below is our quotation for the requested system. We guarantee reliable equipment, professional installation, and full after-sales support across Kenya and East Africa."
)

type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *Image  `json:"image,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CustomerInfo struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type SalesRepInfo struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Signature *Image `json:"signature,omitempty"`
}

// Project carries the optional system title and the free-text introduction
// shown above the line-item table.
type Project struct {
	Title     string `json:"title"`
	IntroText string `json:"intro_text"`
}

type Meta struct {
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

type Pricing struct {
	InstallationCost float64 `json:"installation_cost"`
	TaxEnabled       bool    `json:"tax_enabled"`
}

// Snapshot is an immutable copy of a form at one point in time.
type Snapshot struct {
	Meta     Meta         `json:"meta"`
	Customer CustomerInfo `json:"customer"`
	SalesRep SalesRepInfo `json:"sales_rep"`
	Project  Project      `json:"project"`
	Items    []LineItem   `json:"items"`
	Pricing  Pricing      `json:"pricing"`
}
