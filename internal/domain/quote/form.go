package quote

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrItemNotFound = errors.New("line item not found")
)

// Form is the state of one quotation being edited. Every edit swaps in a new
// copy of the record it touches, so a Snapshot never changes after it is taken.
type Form struct {
	mu sync.RWMutex

	meta     Meta
	customer CustomerInfo
	salesRep SalesRepInfo
	project  Project
	items    []LineItem
	pricing  Pricing

	newID func() string
}

type Option func(*Form)

// WithIDGenerator replaces the uuid generator used for new line items.
func WithIDGenerator(fn func() string) Option {
	return func(f *Form) { f.newID = fn }
}

func NewForm(meta Meta, opts ...Option) *Form {
	f := &Form{
		meta:     meta,
		salesRep: SalesRepInfo{Position: DefaultPosition},
		project:  Project{IntroText: DefaultIntro},
		items:    []LineItem{{ID: "1", Quantity: 1}},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFormAt is NewForm with a freshly generated quotation number.
func NewFormAt(now time.Time, opts ...Option) *Form {
	return NewForm(NewMeta(now, nil), opts...)
}

func (f *Form) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	items := make([]LineItem, len(f.items))
	copy(items, f.items)
	return Snapshot{
		Meta:     f.meta,
		Customer: f.customer,
		SalesRep: f.salesRep,
		Project:  f.project,
		Items:    items,
		Pricing:  f.pricing,
	}
}

func (f *Form) Meta() Meta {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.meta
}

func (f *Form) SetCustomer(c CustomerInfo) {
	f.mu.Lock()
	f.customer = c
	f.mu.Unlock()
}

func (f *Form) UpdateCustomerField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.customer
	switch normalizeField(field) {
	case "name":
		c.Name = value
	case "company":
		c.Company = value
	case "location":
		c.Location = value
	case "phone":
		c.Phone = value
	case "email":
		c.Email = value
	default:
		return fmt.Errorf("customer %q: %w", field, ErrUnknownField)
	}
	f.customer = c
	return nil
}

// SetSalesRep replaces the sales rep details. The signature is carried over;
// it only changes through SetSignature.
func (f *Form) SetSalesRep(r SalesRepInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.Signature = f.salesRep.Signature
	f.salesRep = r
}

func (f *Form) UpdateSalesRepField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r := f.salesRep
	switch normalizeField(field) {
	case "name":
		r.Name = value
	case "position":
		r.Position = value
	case "phone":
		r.Phone = value
	case "email":
		r.Email = value
	default:
		return fmt.Errorf("sales rep %q: %w", field, ErrUnknownField)
	}
	f.salesRep = r
	return nil
}

func (f *Form) SetSignature(img *Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.salesRep
	r.Signature = img
	f.salesRep = r
}

func (f *Form) SetProject(p Project) {
	f.mu.Lock()
	f.project = p
	f.mu.Unlock()
}

func (f *Form) SetInstallationCost(cost float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.pricing
	p.InstallationCost = cost
	f.pricing = p
}

func (f *Form) SetTaxEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.pricing
	p.TaxEnabled = enabled
	f.pricing = p
}

func (f *Form) Item(id string) (LineItem, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, it := range f.items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

func (f *Form) AddLineItem() LineItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	it := LineItem{ID: f.newID(), Quantity: 1}
	items := make([]LineItem, 0, len(f.items)+1)
	items = append(items, f.items...)
	f.items = append(items, it)
	return it
}

// RemoveLineItem drops the item with the given id unless it is the last one
// left. It reports whether anything was removed.
func (f *Form) RemoveLineItem(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) <= 1 {
		return false
	}
	items := make([]LineItem, 0, len(f.items))
	for _, it := range f.items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	if len(items) == len(f.items) {
		return false
	}
	f.items = items
	return true
}

// UpdateLineItem sets one field from its raw form value. Numbers are coerced
// with ParseQuantity and ParseAmount and never rejected.
func (f *Form) UpdateLineItem(id, field, raw string) error {
	var apply func(*LineItem)
	switch normalizeField(field) {
	case "name":
		apply = func(it *LineItem) { it.Name = raw }
	case "description":
		apply = func(it *LineItem) { it.Description = raw }
	case "quantity":
		q := ParseQuantity(raw)
		apply = func(it *LineItem) { it.Quantity = q }
	case "unitprice":
		p := ParseAmount(raw)
		apply = func(it *LineItem) { it.UnitPrice = p }
	default:
		return fmt.Errorf("line item %q: %w", field, ErrUnknownField)
	}
	return f.replaceItem(id, apply)
}

func (f *Form) SetLineItemImage(id string, img *Image) error {
	return f.replaceItem(id, func(it *LineItem) { it.Image = img })
}

// PrefillLineItem copies catalog data onto an existing line item.
func (f *Form) PrefillLineItem(id, name, description string, unitPrice float64) error {
	return f.replaceItem(id, func(it *LineItem) {
		it.Name = name
		it.Description = description
		it.UnitPrice = unitPrice
	})
}

func (f *Form) replaceItem(id string, apply func(*LineItem)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := -1
	for i, it := range f.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%s: %w", id, ErrItemNotFound)
	}

	items := make([]LineItem, len(f.items))
	copy(items, f.items)
	it := items[idx]
	apply(&it)
	items[idx] = it
	f.items = items
	return nil
}

func normalizeField(field string) string {
	s := strings.ToLower(strings.TrimSpace(field))
	return strings.ReplaceAll(s, "_", "")
}
