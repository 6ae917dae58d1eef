package users

import (
	"gopkg.in/mgo.v2/bson"
)

const suspendedKey = "suspended:"

// MarkSuspended flags an account in cache so middleware can reject its
// live tokens without a database roundtrip.
func MarkSuspended(d deps, id bson.ObjectId) error {
	return d.Cache().Set(suspendedKey+id.Hex(), "1", 0, 0, false, false)
}

// ClearSuspended lifts the cache flag, tokens work again.
func ClearSuspended(d deps, id bson.ObjectId) error {
	_, err := d.Cache().Del(suspendedKey + id.Hex())
	return err
}

// IsSuspended checks the cache flag for an account.
func IsSuspended(d deps, id bson.ObjectId) bool {
	exists, err := d.Cache().Exists(suspendedKey + id.Hex())
	return err == nil && exists
}
