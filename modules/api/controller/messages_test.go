package controller

import (
	"testing"

	"github.com/ideaboard/core/board/users"
	"gopkg.in/mgo.v2/bson"
)

func TestMessageable(t *testing.T) {
	active := users.User{Id: bson.NewObjectId(), Status: users.ACTIVE}
	if status, _ := messageable(active, nil); status != 0 {
		t.Errorf("active accounts should take messages, got %d", status)
	}

	banned := active
	banned.Login.Banned = true
	if status, _ := messageable(banned, nil); status != 400 {
		t.Errorf("banned recipients should be rejected with 400, got %d", status)
	}

	tombstone := users.User{Id: bson.NewObjectId(), Status: users.DELETED}
	if status, _ := messageable(tombstone, nil); status != 404 {
		t.Errorf("tombstones should read as unknown, got %d", status)
	}

	if status, _ := messageable(users.User{}, users.UserNotFound); status != 404 {
		t.Errorf("lookup misses should read as unknown, got %d", status)
	}
}
