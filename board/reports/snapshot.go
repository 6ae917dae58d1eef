package reports

import (
	"gopkg.in/mgo.v2/bson"
)

// Snapshot freezes a copy of the reported content into the report, so
// moderators still see it after edits or deletion. Credentials never
// make it into the copy.
func Snapshot(kind string, content interface{}) (bson.M, error) {
	encoded, err := bson.Marshal(content)
	if err != nil {
		return nil, err
	}
	frozen := bson.M{}
	if err := bson.Unmarshal(encoded, &frozen); err != nil {
		return nil, err
	}
	if kind == KindUser {
		if login, ok := frozen["login"].(bson.M); ok {
			delete(login, "password")
		}
	}
	return frozen, nil
}
