package client

import (
	"github.com/streetbites/streetbites/models"
)

// GetMenu fetches the catalog and maps it into local menu items.
func (c *Client) GetMenu() ([]models.MenuItem, error) {
	var wire []models.BackendMenuItem
	if err := c.get("/api/menu", &wire); err != nil {
		return nil, err
	}

	items := make([]models.MenuItem, 0, len(wire))
	for _, m := range wire {
		items = append(items, m.ToMenuItem())
	}
	return items, nil
}
