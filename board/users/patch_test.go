package users

import (
	"testing"
	"time"

	"gopkg.in/mgo.v2/bson"
)

func fixtureUser() User {
	return User{
		Id:     bson.NewObjectId(),
		Status: ACTIVE,
		Login: Login{
			Username: "fernandez14",
			Email:    "f@ideaboard.io",
			Password: "$2a$14$hash",
			Reports:  []bson.ObjectId{bson.NewObjectId()},
		},
		Personal: Personal{
			Bio:  "old bio",
			Name: Name{First: "Felipe", Public: true},
			Contacts: Contacts{
				Links: []Link{{Title: "a", URL: "https://a.io", Public: true}, {Title: "b", URL: "https://b.io", Public: true}},
			},
		},
		Power:   10,
		Created: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestStripProtected(t *testing.T) {
	patch := map[string]interface{}{
		"id":     "x",
		"status": "deleted",
		"power":  9999,
		"login": map[string]interface{}{
			"admin":   true,
			"banned":  true,
			"reports": []string{},
			"email":   "new@ideaboard.io",
		},
	}
	StripProtected(patch, false)

	if _, kept := patch["status"]; kept {
		t.Error("status must not be patchable")
	}
	if _, kept := patch["power"]; kept {
		t.Error("power must not be patchable")
	}
	login := patch["login"].(map[string]interface{})
	if _, kept := login["admin"]; kept {
		t.Error("non admins must not flip the admin switch")
	}
	if _, kept := login["banned"]; kept {
		t.Error("non admins must not flip the banned switch")
	}
	if _, kept := login["reports"]; kept {
		t.Error("reports list must not be patchable")
	}
	if login["email"] != "new@ideaboard.io" {
		t.Error("regular login fields should survive")
	}

	adminPatch := map[string]interface{}{"login": map[string]interface{}{"banned": true}}
	StripProtected(adminPatch, true)
	if _, kept := adminPatch["login"].(map[string]interface{})["banned"]; !kept {
		t.Error("admins may flip the banned switch")
	}
}

func TestMergePatchDeepMerge(t *testing.T) {
	usr := fixtureUser()
	merged, err := MergePatch(usr, map[string]interface{}{
		"personal": map[string]interface{}{
			"bio": "new bio",
			"contacts": map[string]interface{}{
				"links": []interface{}{
					map[string]interface{}{"title": "only", "url": "https://only.io", "public": true},
				},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Personal.Bio != "new bio" {
		t.Errorf("bio should be patched, got %q", merged.Personal.Bio)
	}
	if merged.Personal.Name.First != "Felipe" {
		t.Error("untouched nested fields should survive the merge")
	}
	if len(merged.Personal.Contacts.Links) != 1 || merged.Personal.Contacts.Links[0].Title != "only" {
		t.Errorf("lists should be overwritten wholesale, got %v", merged.Personal.Contacts.Links)
	}
	if merged.Login.Username != "fernandez14" || merged.Login.Email != "f@ideaboard.io" {
		t.Error("login should survive untouched")
	}
}

func TestMergePatchKeepsGuardedFields(t *testing.T) {
	usr := fixtureUser()
	merged, err := MergePatch(usr, map[string]interface{}{
		"login": map[string]interface{}{"email": "fresh@ideaboard.io"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Id != usr.Id {
		t.Error("id must never change")
	}
	if merged.Login.Password != usr.Login.Password {
		t.Error("password hash must survive when the patch has none")
	}
	if len(merged.Login.Reports) != len(usr.Login.Reports) {
		t.Error("reports list must survive the merge")
	}
	if !merged.Created.Equal(usr.Created) {
		t.Error("created timestamp must survive the merge")
	}
	if merged.Login.Email != "fresh@ideaboard.io" {
		t.Error("patched email should apply")
	}
}

func TestMergePatchPassword(t *testing.T) {
	usr := fixtureUser()
	merged, err := MergePatch(usr, map[string]interface{}{
		"login": map[string]interface{}{"password": "$2a$14$newhash"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Login.Password != "$2a$14$newhash" {
		t.Errorf("pre-hashed password in the patch should win, got %q", merged.Login.Password)
	}
}
