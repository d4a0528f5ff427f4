package models

import (
	"encoding/json"
	"os"
)

// CartItem is a single edition in the cart
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// Cart holds the editions a visitor intends to buy at the unit price.
// It is persisted as JSON in the config directory between invocations.
type Cart struct {
	Items []CartItem `json:"items"`

	// File the cart was loaded from
	path string
}

// LoadCart loads the cart from the given file, returning an empty cart
// when the file does not exist yet
func LoadCart(path string) (*Cart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Cart{path: path}, nil
		}
		return nil, err
	}

	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	cart.path = path

	return &cart, nil
}

// Save writes the cart back to the file it was loaded from
func (c *Cart) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Add puts an item in the cart, incrementing the quantity if the same
// edition is already present
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity++
			return
		}
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	c.Items = append(c.Items, item)
}

// Remove deletes an item from the cart
func (c *Cart) Remove(id string) error {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// UpdateQuantity sets the quantity of an item already in the cart
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems returns the number of editions in the cart, counting quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount returns the cart total
func (c *Cart) TotalAmount() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Amount * float64(item.Quantity)
	}
	return total
}
