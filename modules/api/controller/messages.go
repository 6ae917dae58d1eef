package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/messages"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

type messageForm struct {
	Content string `json:"content" binding:"required"`
}

// MessagesOverview lists the requester's conversation threads.
func MessagesOverview(c *gin.Context) {
	c.JSON(200, me(c).Messages)
}

// Conversation resolves the requester's thread with a penpal into the
// actual messages.
func Conversation(c *gin.Context) {
	usr := me(c)
	penpal := bson.ObjectIdHex(c.Param("user_id"))

	refs, exists := usr.Messages.WithPenpal(penpal)
	if !exists {
		jsonErr(c, 404, "No conversation with that user.")
		return
	}
	list, err := messages.FindList(deps.Container, refs)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, list)
}

// NewMessage sends a private note, appending it to both sides' threads.
// The sender's copy starts read, the recipient's unread.
func NewMessage(c *gin.Context) {
	var form messageForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid message payload.", err)
		return
	}
	if reason := helpers.CheckLength("message", form.Content); reason != "" {
		jsonErr(c, 400, reason)
		return
	}

	usr := me(c)
	id := bson.ObjectIdHex(c.Param("user_id"))
	if usr.Id == id {
		jsonErr(c, 400, "Users cannot message themselves.")
		return
	}
	penpal, err := users.FindId(deps.Container, id)
	if status, reason := messageable(penpal, err); status != 0 {
		jsonErr(c, status, reason)
		return
	}

	message, err := messages.Create(deps.Container, usr.Id, penpal.Id, form.Content)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}

	mine := usr.Messages.Append(penpal.Id, message.Id)
	mine.MarkRead(penpal.Id)
	if err := users.SaveThreads(deps.Container, usr.Id, mine); err != nil {
		c.AbortWithError(500, err)
		return
	}
	theirs := penpal.Messages.Append(usr.Id, message.Id)
	if err := users.SaveThreads(deps.Container, penpal.Id, theirs); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, message)
}

// ReadConversation flags the requester's thread with a penpal as read.
func ReadConversation(c *gin.Context) {
	toggleConversation(c, true)
}

// UnreadConversation flags it back as unread.
func UnreadConversation(c *gin.Context) {
	toggleConversation(c, false)
}

func toggleConversation(c *gin.Context, read bool) {
	usr := me(c)
	penpal := bson.ObjectIdHex(c.Param("user_id"))

	threads := usr.Messages
	var flagged bool
	if read {
		flagged = threads.MarkRead(penpal)
	} else {
		flagged = threads.MarkUnread(penpal)
	}
	if !flagged {
		jsonErr(c, 404, "No conversation with that user.")
		return
	}
	if err := users.SaveThreads(deps.Container, usr.Id, threads); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// DeleteMessage removes a message from the requester's thread only. The
// document itself is purged once the penpal's thread no longer
// references it either.
func DeleteMessage(c *gin.Context) {
	usr := me(c)
	penpal := bson.ObjectIdHex(c.Param("user_id"))
	id := bson.ObjectIdHex(c.Param("id"))

	threads, removed := usr.Messages.RemoveMessage(penpal, id)
	if !removed {
		jsonErr(c, 404, "No such message in that conversation.")
		return
	}
	if err := users.SaveThreads(deps.Container, usr.Id, threads); err != nil {
		c.AbortWithError(500, err)
		return
	}

	if peerReferences(penpal, usr.Id, id) {
		c.JSON(200, gin.H{"status": "okay"})
		return
	}
	if err := messages.Delete(deps.Container, id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// DeleteConversation drops the requester's whole thread with a penpal,
// purging every message the penpal no longer references.
func DeleteConversation(c *gin.Context) {
	usr := me(c)
	penpal := bson.ObjectIdHex(c.Param("user_id"))

	threads, orphans, removed := usr.Messages.RemoveThread(penpal)
	if !removed {
		jsonErr(c, 404, "No conversation with that user.")
		return
	}
	if err := users.SaveThreads(deps.Container, usr.Id, threads); err != nil {
		c.AbortWithError(500, err)
		return
	}

	gone := []bson.ObjectId{}
	for _, ref := range orphans {
		if !peerReferences(penpal, usr.Id, ref) {
			gone = append(gone, ref)
		}
	}
	if err := messages.DeleteMany(deps.Container, gone); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// messageable reports why a recipient cannot take new messages; zero
// status means it can.
func messageable(penpal users.User, err error) (int, string) {
	if err != nil || penpal.Deleted() {
		return 404, "Unknown user."
	}
	if penpal.Login.Banned {
		return 400, "That account cannot receive messages right now."
	}
	return 0, ""
}

// peerReferences reports whether the penpal's own thread still holds the
// message. A missing penpal holds nothing.
func peerReferences(penpal, owner, id bson.ObjectId) bool {
	peer, err := users.FindId(deps.Container, penpal)
	if err != nil {
		return false
	}
	return peer.Messages.Has(owner, id)
}
