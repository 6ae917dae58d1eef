package tags

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Tag is a shared lowercase label across ideas. Count tracks how many
// ideas carry it; a tag with no ideas left gets deleted.
type Tag struct {
	Id      bson.ObjectId   `bson:"_id,omitempty" json:"id"`
	Title   string          `bson:"title" json:"title"`
	Slug    string          `bson:"slug" json:"slug"`
	Count   int             `bson:"count" json:"count"`
	Ideas   []bson.ObjectId `bson:"ideas" json:"ideas"`
	Created time.Time       `bson:"created_at" json:"created_at"`
	Updated time.Time       `bson:"updated_at" json:"updated_at"`
}

type Tags []Tag
