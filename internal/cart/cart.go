// Package cart holds the per-customer shopping cart: the domain rules in
// this file and a persistence-backed service around them.
//
// A cart may only ever contain lines from one store at a time. Adding an
// item from a different store replaces the whole cart; the caller gets a
// tagged outcome so it can warn the user instead of discovering the loss
// later.
package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Outcome tags what an Add actually did to the cart.
type Outcome string

const (
	// OutcomeAdded means a new line was appended.
	OutcomeAdded Outcome = "ADDED"
	// OutcomeIncremented means an existing line's quantity grew by one.
	OutcomeIncremented Outcome = "INCREMENTED"
	// OutcomeReplacedStore means the incoming item belonged to a different
	// store and the previous contents were discarded.
	OutcomeReplacedStore Outcome = "REPLACED_STORE"
)

// Line is one purchasable quantity of one product variant. UnitPrice is
// frozen at the moment the item was added and does not track catalog
// changes.
type Line struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Quantity  int32
	StoreID   string
}

// Subtotal is UnitPrice times Quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Cart is the in-memory cart state: the active store and its lines.
// Invariants, upheld by every mutator:
//   - all lines share StoreID, or the cart is empty and StoreID is ""
//   - every line has Quantity >= 1
//   - no two lines share an ID
type Cart struct {
	StoreID string
	Lines   []Line
}

// Item is the input to Add: a product (optionally with a variant already
// folded into ID and Name) priced at the moment of adding.
type Item struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	StoreID   string
}

// Add inserts an item with quantity 1, increments the matching line if the
// id is already present, or replaces the whole cart when the item belongs
// to a different store than the current contents.
func (c *Cart) Add(item Item) (Outcome, error) {
	if item.ID == "" {
		return "", fmt.Errorf("cart: item id is required")
	}
	if item.StoreID == "" {
		return "", fmt.Errorf("cart: item store id is required")
	}
	if item.UnitPrice.IsNegative() {
		return "", fmt.Errorf("cart: item %q has negative unit price", item.ID)
	}

	line := Line{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		ImageURL:  item.ImageURL,
		Quantity:  1,
		StoreID:   item.StoreID,
	}

	if len(c.Lines) > 0 && c.StoreID != item.StoreID {
		c.StoreID = item.StoreID
		c.Lines = []Line{line}
		return OutcomeReplacedStore, nil
	}

	if len(c.Lines) == 0 {
		c.StoreID = item.StoreID
		c.Lines = []Line{line}
		return OutcomeAdded, nil
	}

	for i := range c.Lines {
		if c.Lines[i].ID == item.ID {
			c.Lines[i].Quantity++
			return OutcomeIncremented, nil
		}
	}

	c.Lines = append(c.Lines, line)
	return OutcomeAdded, nil
}

// Remove deletes the line with the given id. Removing the last line clears
// the active store. No-op when the id is absent.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			break
		}
	}
	if len(c.Lines) == 0 {
		c.StoreID = ""
	}
}

// SetQuantity sets a line's quantity to an absolute value. A value of zero
// or less removes the line. No-op when the id is absent.
func (c *Cart) SetQuantity(id string, quantity int32) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart and the active store.
func (c *Cart) Clear() {
	c.Lines = nil
	c.StoreID = ""
}

// Subtotal is the merchandise total over all lines. Service and delivery
// fees are the checkout layer's concern.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count is the number of distinct lines.
func (c *Cart) Count() int {
	return len(c.Lines)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// LineID builds the composite line id for a product with a selected
// option, so the same product with two options yields two distinct lines.
// A product without an option keeps its bare id.
func LineID(productID, option string) string {
	if option == "" {
		return productID
	}
	return productID + "-" + sanitizeOption(option)
}

func sanitizeOption(option string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(option) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
