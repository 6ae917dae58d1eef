package users

import (
	"time"

	"github.com/ideaboard/core/modules/helpers"
	"github.com/satori/go.uuid"
	"gopkg.in/mgo.v2/bson"
)

// TombstoneProfile builds the reset document written over a deleted
// account. The id survives so references from other collections keep
// resolving, the email slot holds the id hex as a sentinel, and the
// username slot gets freed up for someone else.
func TombstoneProfile(id bson.ObjectId, created time.Time) User {
	return User{
		Id:     id,
		Status: DELETED,
		Login: Login{
			Username: "deleted-" + id.Hex(),
			Email:    id.Hex(),
		},
		Personal: Personal{
			Contacts: Contacts{Links: []Link{}},
		},
		Ideas: []bson.ObjectId{},
		Interactions: Interactions{
			Favorites: []bson.ObjectId{},
			Comments:  []bson.ObjectId{},
			Upvotes:   []bson.ObjectId{},
			Downvotes: []bson.ObjectId{},
		},
		Messages: Threads{},
		Created:  created,
		Updated:  time.Now(),
	}
}

// Tombstone resets a deleted account in place and marks it suspended so
// any live token it issued stops working right away.
func Tombstone(d deps, usr User) (User, error) {
	reset := TombstoneProfile(usr.Id, usr.Created)
	hash, err := helpers.HashPassword(uuid.NewV4().String() + helpers.StrRandom(16))
	if err != nil {
		return usr, err
	}
	reset.Login.Password = hash
	if err := d.Mgo().C("users").UpdateId(usr.Id, reset); err != nil {
		return usr, err
	}
	if err := MarkSuspended(d, usr.Id); err != nil {
		return usr, err
	}
	return reset, nil
}
