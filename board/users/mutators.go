package users

import (
	"errors"
	"time"

	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

var (
	EmailTakenErr    = errors.New("email address already in use")
	UsernameTakenErr = errors.New("username already in use")
	FollowExists     = errors.New("already following that user")
	FollowMissing    = errors.New("not following that user")
)

var interactionFields = map[string]bool{
	"favorites": true,
	"comments":  true,
	"upvotes":   true,
	"downvotes": true,
}

// SignUp creates a fresh account with the given credentials. Password
// gets hashed before the document hits the database.
func SignUp(d deps, email, username, password string) (User, error) {
	if EmailTaken(d, email) {
		return User{}, EmailTakenErr
	}
	if UsernameTaken(d, username) {
		return User{}, UsernameTakenErr
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return User{}, err
	}
	usr := User{
		Id:     bson.NewObjectId(),
		Status: ACTIVE,
		Login: Login{
			Username: username,
			Email:    email,
			Password: hash,
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
		Created:  time.Now(),
		Updated:  time.Now(),
	}
	if err := d.Mgo().C("users").Insert(usr); err != nil {
		return User{}, err
	}
	return usr, nil
}

// MakeAdmin grants moderation rights to an account.
func MakeAdmin(d deps, id bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$set": bson.M{"login.admin": true, "updated_at": time.Now()},
	})
}

// PowerUpdate shifts a user's reputation by delta (may be negative).
func PowerUpdate(d deps, id bson.ObjectId, delta int) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{"$inc": bson.M{"power": delta}})
}

// PushIdea links an idea ref into the author's ideas list.
func PushIdea(d deps, id, idea bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$push": bson.M{"ideas": idea},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

// PullIdea unlinks an idea ref from the author's ideas list.
func PullIdea(d deps, id, idea bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$pull": bson.M{"ideas": idea},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

// PushInteraction tracks a ref under interactions.<kind>.
func PushInteraction(d deps, id bson.ObjectId, kind string, ref bson.ObjectId) error {
	if !interactionFields[kind] {
		return errors.New("unknown interaction kind: " + kind)
	}
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$addToSet": bson.M{"interactions." + kind: ref},
	})
}

// PullInteraction removes a ref from interactions.<kind>.
func PullInteraction(d deps, id bson.ObjectId, kind string, ref bson.ObjectId) error {
	if !interactionFields[kind] {
		return errors.New("unknown interaction kind: " + kind)
	}
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$pull": bson.M{"interactions." + kind: ref},
	})
}

// PushReport links a moderation report to the reported user.
func PushReport(d deps, id, report bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$addToSet": bson.M{"login.reports": report},
	})
}

// PullReport unlinks a resolved report from the reported user.
func PullReport(d deps, id, report bson.ObjectId) error {
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$pull": bson.M{"login.reports": report},
	})
}

// StartFollowing records follower -> followed on both documents.
func StartFollowing(d deps, follower, followed User) error {
	if follower.IsFollowing(followed.Id) {
		return FollowExists
	}
	users := d.Mgo().C("users")
	err := users.UpdateId(follower.Id, bson.M{
		"$push": bson.M{"follow.following.users": followed.Id},
		"$inc":  bson.M{"follow.following.count": 1},
	})
	if err != nil {
		return err
	}
	return users.UpdateId(followed.Id, bson.M{
		"$push": bson.M{"follow.followers.users": follower.Id},
		"$inc":  bson.M{"follow.followers.count": 1},
	})
}

// StopFollowing removes follower -> followed from both documents.
func StopFollowing(d deps, follower, followed User) error {
	if !follower.IsFollowing(followed.Id) {
		return FollowMissing
	}
	users := d.Mgo().C("users")
	err := users.UpdateId(follower.Id, bson.M{
		"$pull": bson.M{"follow.following.users": followed.Id},
		"$inc":  bson.M{"follow.following.count": -1},
	})
	if err != nil {
		return err
	}
	return users.UpdateId(followed.Id, bson.M{
		"$pull": bson.M{"follow.followers.users": follower.Id},
		"$inc":  bson.M{"follow.followers.count": -1},
	})
}

// SaveThreads persists a user's message threads after bookkeeping.
func SaveThreads(d deps, id bson.ObjectId, threads Threads) error {
	if threads == nil {
		threads = Threads{}
	}
	return d.Mgo().C("users").UpdateId(id, bson.M{
		"$set": bson.M{"messages": threads, "updated_at": time.Now()},
	})
}
