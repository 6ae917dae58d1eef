package common

import (
	"gopkg.in/mgo.v2/bson"
)

// Scope is a reusable find criteria fragment.
type Scope bson.M

func WithinID(list []bson.ObjectId) Scope {
	return Scope{"_id": bson.M{"$in": list}}
}

func ByUser(id bson.ObjectId) Scope {
	return Scope{"user_id": id}
}

func WithTag(title string) Scope {
	return Scope{"tags": title}
}

func Published() Scope {
	return Scope{"published": true}
}

// ByScope merges criteria fragments into a single query document.
func ByScope(scopes ...Scope) bson.M {
	criteria := bson.M{}
	for _, scope := range scopes {
		for k, v := range scope {
			criteria[k] = v
		}
	}
	return criteria
}
