package client

import (
	"net/url"

	"github.com/streetbites/streetbites/models"
)

// Branches lists the vendor's branches.
func (c *Client) Branches() ([]models.Branch, error) {
	var branches []models.Branch
	if err := c.get("/api/branch", &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) CreateBranch(branch models.Branch) error {
	return c.post("/api/branch", branch, nil)
}

// Ingredients lists inventory for one branch.
func (c *Client) Ingredients(branch string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	path := "/api/ingredients?branch=" + url.QueryEscape(branch)
	if err := c.get(path, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (c *Client) CreateIngredient(ing models.Ingredient) error {
	return c.post("/api/ingredients", ing, nil)
}

// Staff lists staff profiles for one branch.
func (c *Client) Staff(branch string) ([]models.StaffMember, error) {
	var resp models.StaffResponse
	path := "/api/profiles?branch=" + url.QueryEscape(branch)
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return resp.Staff, nil
}

func (c *Client) CreateStaff(member models.StaffMember) error {
	return c.post("/api/profiles", member, nil)
}
