package controller

import (
	"strings"
	"testing"

	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

func rulesFixture() {
	config.C = new(config.Config)
	config.C.Reload = make(chan bool, 8)
	config.C.Apply(map[string]interface{}{})
}

func patchFixtureUser() users.User {
	return users.User{
		Id:     bson.NewObjectId(),
		Status: users.ACTIVE,
	}
}

func TestValidatePatchProfileFields(t *testing.T) {
	rulesFixture()
	usr := patchFixtureUser()

	var tests = []struct {
		name     string
		personal map[string]interface{}
		rejected bool
	}{
		{
			"bogus phone",
			map[string]interface{}{
				"contacts": map[string]interface{}{
					"phone": map[string]interface{}{"data": "call me maybe"},
				},
			},
			true,
		},
		{
			"underage birthday",
			map[string]interface{}{
				"birthday": map[string]interface{}{"date": "2020-01-01"},
			},
			true,
		},
		{
			"malformed birthday",
			map[string]interface{}{
				"birthday": map[string]interface{}{"date": "soon"},
			},
			true,
		},
		{
			"first name over bounds",
			map[string]interface{}{
				"name": map[string]interface{}{"first_name": strings.Repeat("a", 36)},
			},
			true,
		},
		{
			"avatar is not a url",
			map[string]interface{}{
				"avatar": "definitely not a url",
			},
			true,
		},
		{
			"link title over bounds",
			map[string]interface{}{
				"contacts": map[string]interface{}{
					"links": []interface{}{
						map[string]interface{}{
							"title": strings.Repeat("x", 31),
							"url":   "https://ideaboard.io",
						},
					},
				},
			},
			true,
		},
		{
			"valid profile patch",
			map[string]interface{}{
				"avatar": "https://cdn.ideaboard.io/a.png",
				"name":   map[string]interface{}{"first_name": "Ada", "last_name": "Lovelace"},
				"birthday": map[string]interface{}{
					"date": "1990-06-15T00:00:00Z",
				},
				"contacts": map[string]interface{}{
					"phone": map[string]interface{}{"data": "+36 30 123 4567"},
					"links": []interface{}{
						map[string]interface{}{"title": "blog", "url": "https://ideaboard.io"},
					},
				},
			},
			false,
		},
	}

	for _, test := range tests {
		reason := validatePatch(usr, map[string]interface{}{"personal": test.personal})
		if test.rejected && reason == "" {
			t.Errorf("%s: expected a complaint, patch was accepted", test.name)
		}
		if !test.rejected && reason != "" {
			t.Errorf("%s: unexpected complaint %q", test.name, reason)
		}
	}
}

func TestValidatePatchLinkCap(t *testing.T) {
	rulesFixture()
	usr := patchFixtureUser()

	links := []interface{}{}
	for i := 0; i < 6; i++ {
		links = append(links, map[string]interface{}{"url": "https://ideaboard.io"})
	}
	patch := map[string]interface{}{
		"personal": map[string]interface{}{
			"contacts": map[string]interface{}{"links": links},
		},
	}
	if reason := validatePatch(usr, patch); reason == "" {
		t.Error("expected a complaint for going over the link cap")
	}
}

func TestUsernamesPayload(t *testing.T) {
	list := users.Users{
		{Id: bson.NewObjectId(), Login: users.Login{Username: "ada", Email: "ada@ideaboard.io"}},
		{Id: bson.NewObjectId(), Login: users.Login{Username: "lin"}},
	}

	payload := usernamesPayload(list)
	if len(payload) != 2 {
		t.Fatalf("payload length = %d, want 2", len(payload))
	}
	for i, item := range payload {
		if item["username"] != list[i].Login.Username {
			t.Errorf("item %d username = %v", i, item["username"])
		}
		if item["id"] != list[i].Id {
			t.Errorf("item %d id = %v", i, item["id"])
		}
		if len(item) != 2 {
			t.Errorf("item %d should carry id and username only, got %v", i, item)
		}
	}
}
