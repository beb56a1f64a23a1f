package api

import (
	"errors"
	"net/http"

	"github.com/HuyTapCode05/quanlythuchi/internal/auth"
	"github.com/HuyTapCode05/quanlythuchi/internal/httputil"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsUser)
	r.POST("/register", RegisterUser)
	r.OPTIONS("/login", OptionsUser)
	r.POST("/login", Login)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"notblank" example:"Nguyễn Văn A"`
	Email    string `json:"email" binding:"notblank" example:"a@example.com"`
	Password string `json:"password" binding:"notblank" example:"hunter2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"notblank" example:"a@example.com"`
	Password string `json:"password" binding:"notblank" example:"hunter2"`
}

// User is the API representation of a user. The token is only set
// for logins.
type User struct {
	ID    string `json:"id" example:"0b5f4c1e-6d43-4b52-9f1e-0b7d6a3c8e21"`
	Name  string `json:"name" example:"Nguyễn Văn A"`
	Email string `json:"email" example:"a@example.com"`
	Token string `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/api/users/register [options]
// @Router			/api/users/login [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user. Emails are unique.
// @Tags			Users
// @Produce		json
// @Success		200		{object}	User
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/api/users/register [post]
func RegisterUser(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		abort(c, err)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("hashing password")
		abort(c, models.ErrGeneral)
		return
	}

	user := models.User{
		DefaultModel: models.DefaultModel{ID: uuid.New().String()},
		Name:         request.Name,
		Email:        request.Email,
		Password:     hash,
	}

	if err := models.Create(&user); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// @Summary		Login
// @Description	Verifies the credentials and returns the user with a session token
// @Tags			Users
// @Produce		json
// @Success		200			{object}	User
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/api/users/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	var user models.User
	err := models.DB.Where("email = ?", request.Email).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	}
	if err == nil {
		err = auth.CheckPassword(user.Password, request.Password)
	}
	if err != nil {
		abort(c, err)
		return
	}

	token, err := auth.Tokens.GenerateToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("signing token")
		abort(c, models.ErrGeneral)
		return
	}

	c.JSON(http.StatusOK, User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}
