package model

// Cart lives in redis only, one JSON blob per user. Lines hold the minimum
// the server needs to persist; display fields are joined in from live product
// data when the snapshot is built.
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

type CartLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Line returns the line for productID, or nil.
func (c *Cart) Line(productID uint) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine drops the line for productID if present.
func (c *Cart) RemoveLine(productID uint) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}
