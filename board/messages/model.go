package messages

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Message is one private note between two users. Each side keeps its own
// thread of refs, so deleting on one side leaves the other side's copy
// alone; the document itself goes away once nobody references it.
type Message struct {
	Id      bson.ObjectId `bson:"_id,omitempty" json:"id"`
	From    bson.ObjectId `bson:"from" json:"from"`
	To      bson.ObjectId `bson:"to" json:"to"`
	Content string        `bson:"content" json:"content"`
	Created time.Time     `bson:"created_at" json:"created_at"`
}

type Messages []Message
