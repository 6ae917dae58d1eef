package controller

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
)

type signUpForm struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type credentialsForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRegister creates an account and hands back a signed token.
func UserRegister(c *gin.Context) {
	var form signUpForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid signup payload.", err)
		return
	}
	if !helpers.IsEmail(form.Email) {
		jsonErr(c, 400, "Invalid email address.")
		return
	}
	for field, value := range map[string]string{
		"username": form.Username,
		"password": form.Password,
	} {
		if reason := helpers.CheckLength(field, value); reason != "" {
			jsonErr(c, 400, reason)
			return
		}
	}

	usr, err := users.SignUp(deps.Container, form.Email, form.Username, form.Password)
	switch err {
	case nil:
	case users.EmailTakenErr, users.UsernameTakenErr:
		jsonErr(c, 400, err.Error())
		return
	default:
		c.AbortWithError(500, err)
		return
	}

	token, err := signToken(usr)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay", "token": token, "user": usr})
}

// UserGetToken trades valid credentials for a signed token.
func UserGetToken(c *gin.Context) {
	var form credentialsForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid credentials payload.", err)
		return
	}

	usr, err := users.FindEmail(deps.Container, form.Email)
	if err != nil || usr.Deleted() || !helpers.CheckPasswordHash(form.Password, usr.Login.Password) {
		jsonErr(c, 400, "Account credentials are not correct.")
		return
	}
	if usr.Login.Banned {
		jsonErr(c, 401, "Account suspended.")
		return
	}

	token, err := signToken(usr)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay", "token": token})
}

// signToken bakes the account claims into a signed JWT. Expiry only
// kicks in when the board configures it.
func signToken(usr users.User) (string, error) {
	secret, err := deps.Container.Config().String("application.secret")
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":  usr.Id.Hex(),
		"email":    usr.Login.Email,
		"username": usr.Login.Username,
		"admin":    usr.Login.Admin,
		"banned":   usr.Login.Banned,
	}
	if hours := deps.Container.Config().UInt("application.token_expiration", 0); hours > 0 {
		claims["exp"] = time.Now().Add(time.Duration(hours) * time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
