package comments

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var CommentNotFound = errors.New("comment has not been found by given criteria")

// FindId gets a comment by its document id.
func FindId(d deps, id bson.ObjectId) (comment Comment, err error) {
	err = d.Mgo().C("comments").FindId(id).One(&comment)
	if err == mgo.ErrNotFound {
		err = CommentNotFound
	}
	return
}

// FindList gets comments matching the merged scopes, oldest first.
func FindList(d deps, scopes ...common.Scope) (list Comments, err error) {
	err = d.Mgo().C("comments").Find(common.ByScope(scopes...)).Sort("created_at").All(&list)
	return
}

// ByIdea scopes comments down to one idea.
func ByIdea(id bson.ObjectId) common.Scope {
	return common.Scope{"idea_id": id}
}
