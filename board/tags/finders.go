package tags

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var TagNotFound = errors.New("tag has not been found by given criteria")

// FindId gets a tag by its document id.
func FindId(d deps, id bson.ObjectId) (tag Tag, err error) {
	err = d.Mgo().C("tags").FindId(id).One(&tag)
	if err == mgo.ErrNotFound {
		err = TagNotFound
	}
	return
}

// FindTitle gets a tag by its exact title.
func FindTitle(d deps, title string) (tag Tag, err error) {
	err = d.Mgo().C("tags").Find(bson.M{"title": title}).One(&tag)
	if err == mgo.ErrNotFound {
		err = TagNotFound
	}
	return
}

// FindList gets tags matching the merged scopes, most used first.
func FindList(d deps, scopes ...common.Scope) (list Tags, err error) {
	err = d.Mgo().C("tags").Find(common.ByScope(scopes...)).Sort("-count").All(&list)
	return
}
