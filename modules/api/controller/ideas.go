package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/ideas"
	"github.com/ideaboard/core/board/tags"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/common"
	"github.com/ideaboard/core/core/config"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

var reactionParams = map[string]ideas.Reaction{
	"favorite": ideas.Favorite,
	"upvote":   ideas.Upvote,
	"downvote": ideas.Downvote,
}

type ideaForm struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Published   *bool    `json:"published"`
	Anonymous   bool     `json:"anonymous"`
	Tags        []string `json:"tags"`
}

// published resolves the optional flag against the idea's current state.
func (form ideaForm) published(current bool) bool {
	if form.Published == nil {
		return current
	}
	return *form.Published
}

func viewer(c *gin.Context) (id bson.ObjectId, admin bool) {
	if ref, signed := c.Get("userID"); signed {
		id = ref.(bson.ObjectId)
	}
	return id, isAdmin(c)
}

// feedScopes narrows the idea feed; admins see drafts too.
func feedScopes(admin bool, tag string) []common.Scope {
	var scopes []common.Scope
	if !admin {
		scopes = append(scopes, common.Published())
	}
	if tag != "" {
		scopes = append(scopes, common.WithTag(tag))
	}
	return scopes
}

// Ideas lists the published feed, optionally narrowed down to one tag.
// Admins get unpublished drafts in the listing as well.
func Ideas(c *gin.Context) {
	id, admin := viewer(c)

	list, err := ideas.FindList(deps.Container, feedScopes(admin, c.Query("tag"))...)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	list.Mask(id, admin)

	authors, err := users.FindList(deps.Container, list.UsersScope())
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"ideas": list, "users": authorsIndex(authors)})
}

// IdeaGet shows a single idea with its author joined in.
func IdeaGet(c *gin.Context) {
	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}

	id, admin := viewer(c)
	if !idea.Published && idea.UserId != id && !admin {
		jsonErr(c, 404, "Unknown idea.")
		return
	}
	idea.Mask(id, admin)

	response := gin.H{"idea": idea}
	if idea.UserId != "" {
		if author, err := users.FindId(deps.Container, idea.UserId); err == nil {
			response["author"] = author.PublicView()
		}
	}
	c.JSON(200, response)
}

// IdeaCreate posts a new idea and wires up its tags and author links.
func IdeaCreate(c *gin.Context) {
	var form ideaForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid idea payload.", err)
		return
	}
	for field, value := range map[string]string{
		"title":       form.Title,
		"description": form.Description,
	} {
		if reason := helpers.CheckLength(field, value); reason != "" {
			jsonErr(c, 400, reason)
			return
		}
	}

	usr := me(c)
	list := tags.Normalize(form.Tags, config.C.Rules().Limits.TagsPerIdea)

	idea, err := ideas.Create(deps.Container, usr.Id, form.Title, form.Description, form.published(true), form.Anonymous, list)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	if err := tags.Attach(deps.Container, list, idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	if err := users.PushIdea(deps.Container, usr.Id, idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, idea)
}

// IdeaUpdate edits an idea's own fields, diffing the tag set so shared
// counters stay right.
func IdeaUpdate(c *gin.Context) {
	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}
	if me(c).Id != idea.UserId && !isAdmin(c) {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	var form ideaForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid idea payload.", err)
		return
	}
	for field, value := range map[string]string{
		"title":       form.Title,
		"description": form.Description,
	} {
		if reason := helpers.CheckLength(field, value); reason != "" {
			jsonErr(c, 400, reason)
			return
		}
	}

	next := tags.Normalize(form.Tags, config.C.Rules().Limits.TagsPerIdea)
	added, removed := tags.Diff(idea.Tags, next)
	if err := tags.Attach(deps.Container, added, idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	if err := tags.Detach(deps.Container, removed, idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}

	idea.Title = form.Title
	idea.Description = form.Description
	idea.Published = form.published(idea.Published)
	idea.Anonymous = form.Anonymous
	idea.Tags = next
	if err := ideas.Update(deps.Container, idea); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// IdeaDelete removes an idea along with every cross reference to it.
func IdeaDelete(c *gin.Context) {
	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}
	if me(c).Id != idea.UserId && !isAdmin(c) {
		jsonErr(c, 401, "Not authorized.")
		return
	}

	if err := deleteIdea(idea); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// React casts a favorite or vote on someone else's idea.
func React(c *gin.Context) {
	kind, known := reactionParams[c.Param("reaction")]
	if !known {
		jsonErr(c, 400, "Unknown reaction.")
		return
	}

	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}

	usr := me(c)
	w := config.C.Rules().Power
	delta, switched, err := idea.AddReaction(kind, usr.Id, w)
	switch err {
	case nil:
	case ideas.SelfReaction, ideas.ReactionExists:
		jsonErr(c, 400, err.Error())
		return
	default:
		c.AbortWithError(500, err)
		return
	}

	if err := ideas.UpdateReactions(deps.Container, idea); err != nil {
		c.AbortWithError(500, err)
		return
	}
	if delta != 0 {
		if err := users.PowerUpdate(deps.Container, idea.UserId, delta); err != nil {
			deps.Container.Log().Error(err)
		}
	}
	if switched != "" {
		if err := users.PullInteraction(deps.Container, usr.Id, string(switched), idea.Id); err != nil {
			deps.Container.Log().Error(err)
		}
	}
	if err := users.PushInteraction(deps.Container, usr.Id, string(kind), idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, idea)
}

// Unreact takes a favorite or vote back.
func Unreact(c *gin.Context) {
	kind, known := reactionParams[c.Param("reaction")]
	if !known {
		jsonErr(c, 400, "Unknown reaction.")
		return
	}

	idea, err := ideas.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown idea.")
		return
	}

	usr := me(c)
	delta, err := idea.RemoveReaction(kind, usr.Id, config.C.Rules().Power)
	switch err {
	case nil:
	case ideas.ReactionMissing:
		jsonErr(c, 400, err.Error())
		return
	default:
		c.AbortWithError(500, err)
		return
	}

	if err := ideas.UpdateReactions(deps.Container, idea); err != nil {
		c.AbortWithError(500, err)
		return
	}
	if delta != 0 {
		if err := users.PowerUpdate(deps.Container, idea.UserId, delta); err != nil {
			deps.Container.Log().Error(err)
		}
	}
	if err := users.PullInteraction(deps.Container, usr.Id, string(kind), idea.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, idea)
}
