package messages

import (
	"time"

	"github.com/kennygrant/sanitize"
	"gopkg.in/mgo.v2/bson"
)

// Create inserts a new message. The caller appends the ref to both
// sides' threads.
func Create(d deps, from, to bson.ObjectId, content string) (Message, error) {
	message := Message{
		Id:      bson.NewObjectId(),
		From:    from,
		To:      to,
		Content: sanitize.HTML(content),
		Created: time.Now(),
	}
	if err := d.Mgo().C("messages").Insert(message); err != nil {
		return Message{}, err
	}
	return message, nil
}

// Delete removes a message document for good. Callers only do this once
// neither thread references it anymore.
func Delete(d deps, id bson.ObjectId) error {
	return d.Mgo().C("messages").RemoveId(id)
}

// DeleteMany removes a batch of unreferenced message documents.
func DeleteMany(d deps, refs []bson.ObjectId) error {
	if len(refs) == 0 {
		return nil
	}
	_, err := d.Mgo().C("messages").RemoveAll(bson.M{"_id": bson.M{"$in": refs}})
	return err
}
