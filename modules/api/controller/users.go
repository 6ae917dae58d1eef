package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/ideas"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/common"
	"github.com/ideaboard/core/core/config"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

// Users lists every account for the moderation panel, projected down to
// id and username.
func Users(c *gin.Context) {
	list, err := users.FindNames(deps.Container)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, usernamesPayload(list))
}

func usernamesPayload(list users.Users) []gin.H {
	payload := make([]gin.H, 0, len(list))
	for _, usr := range list {
		payload = append(payload, gin.H{
			"id":       usr.Id,
			"username": usr.Login.Username,
		})
	}
	return payload
}

// UserGetOne shows a profile. Owners and admins get the raw document,
// everyone else the redacted public view.
func UserGetOne(c *gin.Context) {
	id := bson.ObjectIdHex(c.Param("id"))
	usr, err := users.FindId(deps.Container, id)
	if err != nil {
		jsonErr(c, 404, "Unknown user.")
		return
	}

	if viewer, signed := c.Get("userID"); signed && (viewer.(bson.ObjectId) == usr.Id || isAdmin(c)) {
		c.JSON(200, usr)
		return
	}
	c.JSON(200, usr.PublicView())
}

// UserGetByToken echoes back the token owner's full document.
func UserGetByToken(c *gin.Context) {
	c.JSON(200, me(c))
}

// UserIdeas lists a profile's ideas. Anonymous ones only show up for
// the owner and the admins.
func UserIdeas(c *gin.Context) {
	id := bson.ObjectIdHex(c.Param("id"))
	scopes := []common.Scope{common.ByUser(id)}

	viewer, signed := c.Get("userID")
	owner := signed && (viewer.(bson.ObjectId) == id || isAdmin(c))
	if !owner {
		scopes = append(scopes, common.Published(), common.Scope{"anonymous": false})
	}

	list, err := ideas.FindList(deps.Container, scopes...)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, list)
}

// UserUpdate merges a partial profile patch into an account. Only the
// owner or an admin may do it; only an admin may flip the admin/banned
// switches.
func UserUpdate(c *gin.Context) {
	id := bson.ObjectIdHex(c.Param("id"))
	admin := isAdmin(c)
	if me(c).Id != id && !admin {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	usr, err := users.FindId(deps.Container, id)
	if err != nil {
		jsonErr(c, 404, "Unknown user.")
		return
	}
	if usr.Deleted() {
		jsonErr(c, 400, "Deleted accounts cannot be updated.")
		return
	}

	var patch map[string]interface{}
	if err := c.BindJSON(&patch); err != nil {
		jsonErr(c, 400, "Invalid patch payload.")
		return
	}
	users.StripProtected(patch, admin)

	if reason := validatePatch(usr, patch); reason != "" {
		jsonErr(c, 400, reason)
		return
	}

	merged, err := users.MergePatch(usr, patch)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	if err := users.UpdateProfile(deps.Container, merged); err != nil {
		c.AbortWithError(500, err)
		return
	}

	// ban switches take effect on live tokens right away
	if admin && merged.Login.Banned != usr.Login.Banned {
		var err error
		if merged.Login.Banned {
			err = users.MarkSuspended(deps.Container, merged.Id)
		} else {
			err = users.ClearSuspended(deps.Container, merged.Id)
		}
		if err != nil {
			deps.Container.Log().Error(err)
		}
	}

	c.JSON(200, merged)
}

// validatePatch vets the user supplied parts of a profile patch and
// pre-hashes a password change. Empty return means the patch is fine.
func validatePatch(usr users.User, patch map[string]interface{}) string {
	if login, ok := patch["login"].(map[string]interface{}); ok {
		if email, ok := login["email"].(string); ok {
			if !helpers.IsEmail(email) {
				return "Invalid email address."
			}
			if email != usr.Login.Email && users.EmailTaken(deps.Container, email) {
				return users.EmailTakenErr.Error()
			}
		}
		if username, ok := login["username"].(string); ok {
			if reason := helpers.CheckLength("username", username); reason != "" {
				return reason
			}
			if username != usr.Login.Username && users.UsernameTaken(deps.Container, username) {
				return users.UsernameTakenErr.Error()
			}
		}
		if password, ok := login["password"].(string); ok {
			if reason := helpers.CheckLength("password", password); reason != "" {
				return reason
			}
			hash, err := helpers.HashPassword(password)
			if err != nil {
				return "Could not process the new password."
			}
			login["password"] = hash
		}
	}
	if personal, ok := patch["personal"].(map[string]interface{}); ok {
		if bio, ok := personal["bio"].(string); ok {
			if reason := helpers.CheckLength("bio", bio); reason != "" {
				return reason
			}
		}
		if avatar, ok := personal["avatar"].(string); ok {
			if reason := helpers.CheckLength("avatar", avatar); reason != "" {
				return reason
			}
			if avatar != "" && !helpers.IsURL(avatar) {
				return "Malformed avatar url."
			}
		}
		if name, ok := personal["name"].(map[string]interface{}); ok {
			if first, ok := name["first_name"].(string); ok {
				if reason := helpers.CheckLength("firstName", first); reason != "" {
					return reason
				}
			}
			if last, ok := name["last_name"].(string); ok {
				if reason := helpers.CheckLength("lastName", last); reason != "" {
					return reason
				}
			}
		}
		if birthday, ok := personal["birthday"].(map[string]interface{}); ok {
			if date, ok := birthday["date"].(string); ok {
				parsed, err := parseBirthday(date)
				if err != nil {
					return "Malformed birthday date."
				}
				if reason := helpers.ValidBirthday(parsed); reason != "" {
					return reason
				}
			}
		}
		if contacts, ok := personal["contacts"].(map[string]interface{}); ok {
			if phone, ok := contacts["phone"].(map[string]interface{}); ok {
				if data, ok := phone["data"].(string); ok {
					if reason := helpers.CheckLength("phone", data); reason != "" {
						return reason
					}
					if data != "" && !helpers.IsPhone(data) {
						return "Invalid phone number."
					}
				}
			}
			if links, ok := contacts["links"].([]interface{}); ok {
				if limit := config.C.Rules().Limits.LinksPerProfile; len(links) > limit {
					return "Too many contact links."
				}
				for _, item := range links {
					link, ok := item.(map[string]interface{})
					if !ok {
						return "Malformed contact link."
					}
					if title, ok := link["title"].(string); ok {
						if reason := helpers.CheckLength("linkTitle", title); reason != "" {
							return reason
						}
					}
					if url, ok := link["url"].(string); !ok || !helpers.IsURL(url) {
						return "Malformed contact link url."
					}
				}
			}
		}
		if location, ok := personal["location"].(map[string]interface{}); ok {
			if country, ok := location["country"].(map[string]interface{}); ok {
				if name, ok := country["name"].(string); ok && !helpers.IsCountry(name) {
					return "Unknown country."
				}
			}
		}
	}
	return ""
}

// parseBirthday accepts the wire formats a birthday date arrives in.
func parseBirthday(date string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, date)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", date)
}

type purgeForm struct {
	Ideas    *bool `json:"ideas" binding:"required"`
	Comments *bool `json:"comments" binding:"required"`
}

// UserDelete purges an account: unwinds its relationships per the purge
// instruction, then resets the document to a tombstone in place.
func UserDelete(c *gin.Context) {
	id := bson.ObjectIdHex(c.Param("id"))
	if me(c).Id != id && !isAdmin(c) {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	var form purgeForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "A purge instruction for ideas and comments is required.", err)
		return
	}

	usr, err := users.FindId(deps.Container, id)
	if err != nil {
		jsonErr(c, 404, "Unknown user.")
		return
	}
	if usr.Deleted() {
		jsonErr(c, 400, "Account is already deleted.")
		return
	}
	if usr.Login.Admin {
		jsonErr(c, 400, "Admin accounts cannot be deleted.")
		return
	}

	if err := purgeUser(usr, *form.Ideas, *form.Comments); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// UserFollow records the requester following the target.
func UserFollow(c *gin.Context) {
	usr := me(c)
	id := bson.ObjectIdHex(c.Param("id"))
	if usr.Id == id {
		jsonErr(c, 400, "Users cannot follow themselves.")
		return
	}

	target, err := users.FindId(deps.Container, id)
	if err != nil || target.Deleted() {
		jsonErr(c, 404, "Unknown user.")
		return
	}

	switch err := users.StartFollowing(deps.Container, usr, target); err {
	case nil:
		c.JSON(200, gin.H{"status": "okay"})
	case users.FollowExists:
		jsonErr(c, 400, err.Error())
	default:
		c.AbortWithError(500, err)
	}
}

// UserUnfollow takes a follow back.
func UserUnfollow(c *gin.Context) {
	usr := me(c)
	id := bson.ObjectIdHex(c.Param("id"))
	if usr.Id == id {
		jsonErr(c, 400, "Users cannot follow themselves.")
		return
	}

	target, err := users.FindId(deps.Container, id)
	if err != nil {
		jsonErr(c, 404, "Unknown user.")
		return
	}

	switch err := users.StopFollowing(deps.Container, usr, target); err {
	case nil:
		c.JSON(200, gin.H{"status": "okay"})
	case users.FollowMissing:
		jsonErr(c, 400, err.Error())
	default:
		c.AbortWithError(500, err)
	}
}
