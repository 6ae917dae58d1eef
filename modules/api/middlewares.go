package api

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/deps"
	"gopkg.in/mgo.v2/bson"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Authorization picks up the bearer token when present and loads its
// claims into the request context. Anonymous requests pass through.
func Authorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		secret, err := deps.Container.Config().String("application.secret")
		if err != nil {
			panic(err)
		}

		encoded := header[len("Bearer "):]
		signed, err := jwt.Parse(encoded, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !signed.Valid {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Invalid auth token."})
			return
		}

		claims := signed.Claims.(jwt.MapClaims)
		id, exists := claims["user_id"].(string)
		if !exists || !bson.IsObjectIdHex(id) {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Invalid auth token."})
			return
		}

		c.Set("token", encoded)
		c.Set("user_id", id)
		c.Set("userID", bson.ObjectIdHex(id))
		if admin, exists := claims["admin"].(bool); exists {
			c.Set("admin", admin)
		}

		c.Next()
	}
}

// NeedAuthorization cuts off requests that did not carry a valid token.
func NeedAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("token"); !exists {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Auth method required."})
			return
		}

		c.Next()
	}
}

// UserMiddleware resolves the token's subject into a live user document.
// Tombstones and cache suspended accounts get cut off here, so a token
// outliving its account stops working.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.MustGet("userID").(bson.ObjectId)
		if users.IsSuspended(deps.Container, id) {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Account suspended."})
			return
		}

		usr, err := users.FindId(deps.Container, id)
		if err != nil || usr.Deleted() {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Account no longer available."})
			return
		}

		c.Set("user", usr)
		c.Next()
	}
}

// NotSuspended keeps banned accounts out of write operations.
func NotSuspended() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr := c.MustGet("user").(users.User)
		if usr.Suspended() {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Account suspended."})
			return
		}

		c.Next()
	}
}

// NeedAdmin keeps non admins out of moderation surfaces.
func NeedAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr := c.MustGet("user").(users.User)
		if !usr.Login.Admin {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "message": "Not authorized."})
			return
		}

		c.Next()
	}
}

// ValidateBsonID rejects malformed object ids before handlers run.
func ValidateBsonID(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, param := range params {
			if !bson.IsObjectIdHex(c.Param(param)) {
				c.AbortWithStatusJSON(400, gin.H{"status": "error", "message": "Malformed request, invalid id."})
				return
			}
		}

		c.Next()
	}
}
