package messages

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var MessageNotFound = errors.New("message has not been found by given criteria")

// FindId gets a message by its document id.
func FindId(d deps, id bson.ObjectId) (message Message, err error) {
	err = d.Mgo().C("messages").FindId(id).One(&message)
	if err == mgo.ErrNotFound {
		err = MessageNotFound
	}
	return
}

// FindList resolves a thread's refs into messages, oldest first.
func FindList(d deps, refs []bson.ObjectId) (list Messages, err error) {
	err = d.Mgo().C("messages").Find(common.ByScope(common.WithinID(refs))).Sort("created_at").All(&list)
	return
}
