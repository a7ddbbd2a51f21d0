package customer

import (
	"context"
	"fmt"
)

type memoryDirectory struct {
	byID map[string]*Customer
}

// NewMemoryDirectory builds a Directory over the given customers.
func NewMemoryDirectory(customers []Customer) Directory {
	d := &memoryDirectory{byID: make(map[string]*Customer, len(customers))}
	for i := range customers {
		c := customers[i]
		d.byID[c.UserID] = &c
	}
	return d
}

func (d *memoryDirectory) GetByID(ctx context.Context, userID string) (*Customer, error) {
	c, ok := d.byID[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return c, nil
}
