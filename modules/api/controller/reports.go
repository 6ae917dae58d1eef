package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/comments"
	"github.com/ideaboard/core/board/ideas"
	"github.com/ideaboard/core/board/messages"
	"github.com/ideaboard/core/board/reports"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/common"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

type reportForm struct {
	Kind        string `json:"kind" binding:"required"`
	ContentId   string `json:"content_id" binding:"required"`
	UserId      string `json:"user_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type statusForm struct {
	Status string `json:"status" binding:"required"`
}

// NewReport files a moderation report, snapshotting the offending
// content so later edits cannot hide it.
func NewReport(c *gin.Context) {
	var form reportForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid report payload.", err)
		return
	}
	if !reports.ValidKind(form.Kind) {
		jsonErr(c, 400, "Unknown report kind.")
		return
	}
	if !bson.IsObjectIdHex(form.ContentId) || !bson.IsObjectIdHex(form.UserId) {
		jsonErr(c, 400, "Malformed request, invalid id.")
		return
	}
	if reason := helpers.CheckLength("description", form.Description); reason != "" {
		jsonErr(c, 400, reason)
		return
	}

	target, err := users.FindId(deps.Container, bson.ObjectIdHex(form.UserId))
	if err != nil || target.Deleted() {
		jsonErr(c, 404, "Unknown user.")
		return
	}

	content := bson.ObjectIdHex(form.ContentId)
	snapshot, err := snapshotContent(form.Kind, content)
	if err != nil {
		jsonErr(c, 404, "Reported content not found.")
		return
	}

	usr := me(c)
	report, err := reports.File(deps.Container, form.Kind, content, target.Id, usr.Id, form.Description, snapshot)
	switch err {
	case nil:
	case reports.DuplicateReport:
		jsonErr(c, 400, err.Error())
		return
	default:
		c.AbortWithError(500, err)
		return
	}

	if err := users.PushReport(deps.Container, target.Id, report.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	c.JSON(200, report)
}

// snapshotContent looks the reported content up by kind and freezes a
// redacted copy of it.
func snapshotContent(kind string, content bson.ObjectId) (bson.M, error) {
	d := deps.Container
	switch kind {
	case reports.KindUser:
		usr, err := users.FindId(d, content)
		if err != nil {
			return nil, err
		}
		return reports.Snapshot(kind, usr)
	case reports.KindIdea:
		idea, err := ideas.FindId(d, content)
		if err != nil {
			return nil, err
		}
		return reports.Snapshot(kind, idea)
	case reports.KindComment:
		comment, err := comments.FindId(d, content)
		if err != nil {
			return nil, err
		}
		return reports.Snapshot(kind, comment)
	default:
		message, err := messages.FindId(d, content)
		if err != nil {
			return nil, err
		}
		return reports.Snapshot(kind, message)
	}
}

// Reports lists open reports for the moderation panel, optionally
// narrowed down by status, reported content or assignee.
func Reports(c *gin.Context) {
	var scopes []common.Scope
	if status := c.Query("status"); status != "" {
		if !reports.ValidStatus(status) {
			jsonErr(c, 400, "Unknown report status.")
			return
		}
		scopes = append(scopes, common.Scope{"status": status})
	}
	if content := c.Query("content"); content != "" {
		if !bson.IsObjectIdHex(content) {
			jsonErr(c, 400, "Malformed request, invalid id.")
			return
		}
		scopes = append(scopes, common.Scope{"content_id": bson.ObjectIdHex(content)})
	}
	if assignee := c.Query("assigned"); assignee != "" {
		if !bson.IsObjectIdHex(assignee) {
			jsonErr(c, 400, "Malformed request, invalid id.")
			return
		}
		scopes = append(scopes, common.Scope{"assigned": bson.ObjectIdHex(assignee)})
	}

	list, err := reports.FindList(deps.Container, scopes...)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, list)
}

// ReportGet shows a single report.
func ReportGet(c *gin.Context) {
	report, err := reports.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown report.")
		return
	}
	c.JSON(200, report)
}

// AssignReport hands a report to another moderator.
func AssignReport(c *gin.Context) {
	report, err := reports.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown report.")
		return
	}

	assignee, err := users.FindId(deps.Container, bson.ObjectIdHex(c.Param("user_id")))
	if err != nil || assignee.Deleted() {
		jsonErr(c, 404, "Unknown user.")
		return
	}
	if !assignee.Login.Admin {
		jsonErr(c, 400, "Reports can only be assigned to admins.")
		return
	}

	if err := reports.Assign(deps.Container, report.Id, assignee.Id); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// ReportStatus moves a report through its lifecycle.
func ReportStatus(c *gin.Context) {
	var form statusForm
	if err := c.BindJSON(&form); err != nil {
		jsonBindErr(c, 400, "Invalid status payload.", err)
		return
	}
	if !reports.ValidStatus(form.Status) {
		jsonErr(c, 400, "Unknown report status.")
		return
	}

	report, err := reports.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown report.")
		return
	}
	if err := reports.UpdateStatus(deps.Container, report.Id, form.Status); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}

// DeleteReport resolves a report, unlinking it from the reported user.
func DeleteReport(c *gin.Context) {
	report, err := reports.FindId(deps.Container, bson.ObjectIdHex(c.Param("id")))
	if err != nil {
		jsonErr(c, 404, "Unknown report.")
		return
	}

	if err := users.PullReport(deps.Container, report.UserId, report.Id); err != nil {
		deps.Container.Log().Error(err)
	}
	if err := reports.Delete(deps.Container, report.Id); err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, gin.H{"status": "okay"})
}
