package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/users"
	"gopkg.in/go-playground/validator.v8"
)

func jsonErr(c *gin.Context, status int, message string) {
	// This specific json error structure is handled
	// by the frontend in a generic way so errors
	// can be shown to the user and also translated.
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

func jsonBindErr(c *gin.Context, status int, message string, bindErr error) {
	details, ok := bindErr.(validator.ValidationErrors)
	if !ok {
		jsonErr(c, status, message)
		return
	}
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
		"details": details,
	})
}

func me(c *gin.Context) users.User {
	return c.MustGet("user").(users.User)
}

func isAdmin(c *gin.Context) bool {
	if usr, exists := c.Get("user"); exists {
		return usr.(users.User).Login.Admin
	}
	admin, exists := c.Get("admin")
	return exists && admin.(bool)
}

// authorsIndex shapes a joined author list into an id keyed map with
// just the fields lists need to render.
func authorsIndex(list users.Users) map[string]gin.H {
	index := make(map[string]gin.H, len(list))
	for _, usr := range list {
		index[usr.Id.Hex()] = gin.H{
			"username": usr.Login.Username,
			"avatar":   usr.Personal.Avatar,
		}
	}
	return index
}
