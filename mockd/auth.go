package mockd

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	JWTSecret []byte
}

func NewAuthController(db *gorm.DB, secret []byte) *AuthController {
	return &AuthController{DB: db, JWTSecret: secret}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid register payload"))
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, email and password are required"))
		return
	}

	var existing User
	if err := ac.DB.First(&existing, "email = ?", req.Email).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}
	user := User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Branch:       req.Branch,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ac.respondWithToken(c, http.StatusCreated, &user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid login payload"))
		return
	}

	var user User
	if err := ac.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	ac.respondWithToken(c, http.StatusOK, &user)
}

func (ac *AuthController) respondWithToken(c *gin.Context, code int, user *User) {
	token, err := utils.GenerateToken(ac.JWTSecret, user.ID, user.Email, user.Role, user.Branch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(code, gin.H{
		"token":   token,
		"message": "ok",
		"profile": models.Profile{
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Branch: user.Branch,
		},
	})
}
