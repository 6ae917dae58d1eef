package reports

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Content kinds a report may point at.
const (
	KindUser    = "user"
	KindIdea    = "idea"
	KindComment = "comment"
	KindMessage = "message"
)

var validKinds = map[string]bool{
	KindUser:    true,
	KindIdea:    true,
	KindComment: true,
	KindMessage: true,
}

func ValidKind(kind string) bool {
	return validKinds[kind]
}

// Report lifecycle.
const (
	StatusNew     = "new"
	StatusPending = "pending"
	StatusClosed  = "closed"
)

var validStatuses = map[string]bool{
	StatusNew:     true,
	StatusPending: true,
	StatusClosed:  true,
}

func ValidStatus(status string) bool {
	return validStatuses[status]
}

// Entry is one reporter's complaint. Reports against the same content
// pile up entries instead of spawning new documents.
type Entry struct {
	By          bson.ObjectId `bson:"by" json:"by"`
	Description string        `bson:"description" json:"description"`
	Created     time.Time     `bson:"created_at" json:"created_at"`
}

type Report struct {
	Id        bson.ObjectId `bson:"_id,omitempty" json:"id"`
	ContentId bson.ObjectId `bson:"content_id" json:"content_id"`
	Kind      string        `bson:"kind" json:"kind"`
	UserId    bson.ObjectId `bson:"user_id" json:"user_id"`
	Status    string        `bson:"status" json:"status"`
	Snapshot  bson.M        `bson:"snapshot" json:"snapshot"`
	Entries   []Entry       `bson:"entries" json:"entries"`
	Count     int           `bson:"report_count" json:"report_count"`
	Assigned  bson.ObjectId `bson:"assigned,omitempty" json:"assigned,omitempty"`
	Created   time.Time     `bson:"created_at" json:"created_at"`
	Updated   time.Time     `bson:"updated_at" json:"updated_at"`
}

// HasReporter reports whether id already filed a complaint here.
func (r Report) HasReporter(id bson.ObjectId) bool {
	for _, entry := range r.Entries {
		if entry.By == id {
			return true
		}
	}
	return false
}

type Reports []Report
