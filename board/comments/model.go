package comments

import (
	"time"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2/bson"
)

type Comment struct {
	Id      bson.ObjectId `bson:"_id,omitempty" json:"id"`
	UserId  bson.ObjectId `bson:"user_id" json:"user_id"`
	IdeaId  bson.ObjectId `bson:"idea_id" json:"idea_id"`
	Content string        `bson:"content" json:"content"`
	Created time.Time     `bson:"created_at" json:"created_at"`
	Updated time.Time     `bson:"updated_at" json:"updated_at"`
}

type Comments []Comment

// UsersScope builds a criteria fragment matching the comment authors so
// callers can join profiles in one query.
func (list Comments) UsersScope() common.Scope {
	var authors []bson.ObjectId
	seen := map[bson.ObjectId]bool{}
	for _, comment := range list {
		if seen[comment.UserId] {
			continue
		}
		seen[comment.UserId] = true
		authors = append(authors, comment.UserId)
	}
	return common.WithinID(authors)
}
