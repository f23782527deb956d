package mockd

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
	"gorm.io/gorm"
)

type ManageController struct {
	DB *gorm.DB
}

func NewManageController(db *gorm.DB) *ManageController {
	return &ManageController{DB: db}
}

func (mc *ManageController) ListBranches(c *gin.Context) {
	var branches []Branch
	if err := mc.DB.Order("name").Find(&branches).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]models.Branch, 0, len(branches))
	for _, b := range branches {
		out = append(out, models.Branch{ID: itoa(b.ID), Name: b.Name, Address: b.Address})
	}
	c.JSON(http.StatusOK, out)
}

func (mc *ManageController) CreateBranch(c *gin.Context) {
	var req models.Branch
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("branch name is required"))
		return
	}
	branch := Branch{Name: req.Name, Address: req.Address}
	if err := mc.DB.Create(&branch).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Branch created", nil)
}

func (mc *ManageController) ListIngredients(c *gin.Context) {
	branch := c.Query("branch")

	query := mc.DB.Order("name")
	if branch != "" {
		query = query.Where("branch = ?", branch)
	}
	var ingredients []Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]models.Ingredient, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, ingredients[i].toWire())
	}
	c.JSON(http.StatusOK, out)
}

func (mc *ManageController) CreateIngredient(c *gin.Context) {
	var req struct {
		models.Ingredient
		Branch string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("ingredient name is required"))
		return
	}
	ing := Ingredient{Branch: req.Branch, Name: req.Name, Quantity: req.Quantity, Unit: req.Unit}
	if err := mc.DB.Create(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", nil)
}

// ListStaff returns staff accounts, optionally scoped by branch.
func (mc *ManageController) ListStaff(c *gin.Context) {
	branch := c.Query("branch")

	query := mc.DB.Order("name")
	if branch != "" {
		query = query.Where("branch = ?", branch)
	}
	var users []User
	if err := query.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	staff := make([]models.StaffMember, 0, len(users))
	for _, u := range users {
		staff = append(staff, models.StaffMember{
			ID:    itoa(u.ID),
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// CreateStaff adds a staff profile without credentials; the account logs in
// only after registering, mirroring the real backend's two-step flow.
func (mc *ManageController) CreateStaff(c *gin.Context) {
	var req models.StaffMember
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("staff email is required"))
		return
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	user := User{Name: req.Name, Email: req.Email, Role: role}
	if err := mc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Staff profile created", nil)
}
