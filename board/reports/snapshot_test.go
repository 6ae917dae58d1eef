package reports

import (
	"testing"
	"time"

	"github.com/ideaboard/core/board/users"
	"gopkg.in/mgo.v2/bson"
)

func TestSnapshotRedactsCredentials(t *testing.T) {
	usr := users.User{
		Id: bson.NewObjectId(),
		Login: users.Login{
			Username: "troll42",
			Email:    "troll@ideaboard.io",
			Password: "$2a$14$secret",
		},
	}

	snapshot, err := Snapshot(KindUser, usr)
	if err != nil {
		t.Fatal(err)
	}
	login, ok := snapshot["login"].(bson.M)
	if !ok {
		t.Fatal("snapshot should keep the login document")
	}
	if _, leaked := login["password"]; leaked {
		t.Error("password hash leaked into the report snapshot")
	}
	if login["username"] != "troll42" {
		t.Error("snapshot should keep the username")
	}
}

func TestSnapshotKeepsOtherKindsIntact(t *testing.T) {
	content := struct {
		Id    bson.ObjectId `bson:"_id"`
		Title string        `bson:"title"`
	}{bson.NewObjectId(), "offensive idea"}

	snapshot, err := Snapshot(KindIdea, content)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot["title"] != "offensive idea" {
		t.Errorf("snapshot title = %v", snapshot["title"])
	}
}

func TestHasReporter(t *testing.T) {
	reporter := bson.NewObjectId()
	report := Report{
		Entries: []Entry{{By: reporter, Description: "spam", Created: time.Now()}},
	}
	if !report.HasReporter(reporter) {
		t.Error("reporter should be found")
	}
	if report.HasReporter(bson.NewObjectId()) {
		t.Error("stranger should not be found")
	}
}

func TestValidKind(t *testing.T) {
	for _, kind := range []string{KindUser, KindIdea, KindComment, KindMessage} {
		if !ValidKind(kind) {
			t.Errorf("%s should be a valid kind", kind)
		}
	}
	if ValidKind("playlist") {
		t.Error("unknown kinds must be rejected")
	}
}
