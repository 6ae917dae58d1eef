package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/board/tags"
	"github.com/ideaboard/core/deps"
)

// Tags lists every live tag, most used first.
func Tags(c *gin.Context) {
	list, err := tags.FindList(deps.Container)
	if err != nil {
		c.AbortWithError(500, err)
		return
	}
	c.JSON(200, list)
}

// TagGet shows a single tag by its exact title.
func TagGet(c *gin.Context) {
	tag, err := tags.FindTitle(deps.Container, c.Param("title"))
	if err != nil {
		jsonErr(c, 404, "Unknown tag.")
		return
	}
	c.JSON(200, tag)
}
