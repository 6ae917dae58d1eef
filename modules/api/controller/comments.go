package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/comments"
	"github.com/ideaboard/core/board/ideas"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/common"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

type commentForm struct {
	Content string `json:"content" binding:"required"`
}

// Comments lists comments for the moderation panel, optionally narrowed
// down to one author or one idea.
func Comments(c *gin.Context) {
	var scopes []common.Scope
	if author := c.Query("author"); author != "" {
		if !bson.IsObjectIdHex(author) {
			jsonErr(c, 400, "Malformed request, invalid id.")
			return
		}
		scopes = append(scopes, common.ByUser(bson.ObjectIdHex(author)))
	}
	if idea := c.Query("idea"); idea != "" {
		if !bson.IsObjectIdHex(idea) {
			jsonErr(c, 400, "Malformed request, invalid id.")
			return
		}
		scopes = append(scopes, comments.ByIdea(bson.ObjectIdHex(idea)))
	}

	list, err := comments.FindList(deps.Container, scopes...)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, list)
}

// CommentGet shows a single comment.
func CommentGet(c *gin.Context) {
	comment, err := comments.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown comment.")
		return
	}
	c.JSON(200, comment)
}

// IdeaComments lists an idea's comments with authors joined in.
func IdeaComments(c *gin.Context) {
	id := bson.ObjectIdHex(c.Param("id"))
	if _, err := ideas.FindId(deps.Container, id); err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}

	list, err := comments.FindList(deps.Container, comments.ByIdea(id))
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	authors, err := users.FindList(deps.Container, list.UsersScope())
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"comments": list, "users": authorsIndex(authors)})
}

// NewComment posts a comment and links it into the idea and the
// author's interactions.
func NewComment(c *gin.Context) {
	var form commentForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid comment payload.", err)
		return
	}
	if reason := helpers.CheckLength("comment", form.Content); reason != "" {
		jsonErr(c, 400, reason)
		return
	}

	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}

	usr := me(c)
	comment, err := comments.Create(deps.Container, usr.Id, idea.Id, form.Content)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	if err := ideas.PushComment(deps.Container, idea.Id, comment.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	if err := users.PushInteraction(deps.Container, usr.Id, "comments", comment.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, comment)
}

// UpdateComment rewrites a comment's text.
func UpdateComment(c *gin.Context) {
	comment, err := comments.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown comment.")
		return
	}
	if me(c).Id != comment.UserId && !isAdmin(c) {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	var form commentForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid comment payload.", err)
		return
	}
	if reason := helpers.CheckLength("comment", form.Content); reason != "" {
		jsonErr(c, 400, reason)
		return
	}

	if err := comments.UpdateContent(deps.Container, comment.Id, form.Content); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// DeleteComment removes a comment from all three records tracking it.
func DeleteComment(c *gin.Context) {
	comment, err := comments.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown comment.")
		return
	}
	if me(c).Id != comment.UserId && !isAdmin(c) {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	if err := comments.Delete(deps.Container, comment.Id); err != nil {
		c.AbortWithError(500, err)
		return
	}
	if err := ideas.PullComment(deps.Container, comment.IdeaId, comment.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	if err := users.PullInteraction(deps.Container, comment.UserId, "comments", comment.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, gin.H{"status": "okay"})
}
