package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Login -> issue a JWT for the role-gated surface
func (uc *UserController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		utils.RespondError(c, utils.NewAuthorizationError("invalid credentials"))
		return
	}
	if !user.IsActive || !user.CheckPassword(body.Password) {
		utils.RespondError(c, utils.NewAuthorizationError("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, utils.NewInternalError(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token": token,
		"user":  user,
	})
}

// GetProfile -> the authenticated user
func (uc *UserController) GetProfile(c *gin.Context) {
	actor := actorFrom(c)

	var user models.User
	if err := uc.DB.First(&user, "id = ?", actor.ID).Error; err != nil {
		utils.RespondError(c, utils.NewNotFoundError("user not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}
