package users

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var UserNotFound = errors.New("user has not been found by given criteria")

// FindId gets a user by its document id.
func FindId(d deps, id bson.ObjectId) (user User, err error) {
	err = d.Mgo().C("users").FindId(id).One(&user)
	if err == mgo.ErrNotFound {
		err = UserNotFound
	}
	return
}

// FindEmail gets a user by email address.
func FindEmail(d deps, email string) (user User, err error) {
	err = d.Mgo().C("users").Find(bson.M{"login.email": email}).One(&user)
	if err == mgo.ErrNotFound {
		err = UserNotFound
	}
	return
}

// FindUsername gets a user by username.
func FindUsername(d deps, username string) (user User, err error) {
	err = d.Mgo().C("users").Find(bson.M{"login.username": username}).One(&user)
	if err == mgo.ErrNotFound {
		err = UserNotFound
	}
	return
}

// FindNames gets every account projected down to id and username.
func FindNames(d deps) (list Users, err error) {
	err = d.Mgo().C("users").Find(nil).Select(bson.M{"login.username": 1}).All(&list)
	return
}

// FindList gets a list of users matching the merged scopes.
func FindList(d deps, scopes ...common.Scope) (list Users, err error) {
	err = d.Mgo().C("users").Find(common.ByScope(scopes...)).All(&list)
	return
}

// EmailTaken reports whether an active account already uses the email.
func EmailTaken(d deps, email string) bool {
	n, err := d.Mgo().C("users").Find(bson.M{"login.email": email}).Count()
	return err == nil && n > 0
}

// UsernameTaken reports whether an account already uses the username.
func UsernameTaken(d deps, username string) bool {
	n, err := d.Mgo().C("users").Find(bson.M{"login.username": username}).Count()
	return err == nil && n > 0
}
