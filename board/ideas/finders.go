package ideas

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var IdeaNotFound = errors.New("idea has not been found by given criteria")

// FindId gets an idea by its document id.
func FindId(d deps, id bson.ObjectId) (idea Idea, err error) {
	err = d.Mgo().C("ideas").FindId(id).One(&idea)
	if err == mgo.ErrNotFound {
		err = IdeaNotFound
	}
	return
}

// FindList gets ideas matching the merged scopes, newest first.
func FindList(d deps, scopes ...common.Scope) (list Ideas, err error) {
	err = d.Mgo().C("ideas").Find(common.ByScope(scopes...)).Sort("-created_at").All(&list)
	return
}
