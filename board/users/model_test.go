package users

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/mgo.v2/bson"
)

func TestDeletedMarker(t *testing.T) {
	id := bson.NewObjectId()

	Convey("Deleted accounts are recognized", t, func() {
		alive := User{Id: id, Status: ACTIVE, Login: Login{Email: "someone@ideaboard.io"}}
		So(alive.Deleted(), ShouldBeFalse)

		tagged := User{Id: id, Status: DELETED, Login: Login{Email: "someone@ideaboard.io"}}
		So(tagged.Deleted(), ShouldBeTrue)

		// documents written before the status tag existed only carry
		// the email == id sentinel
		legacy := User{Id: id, Login: Login{Email: id.Hex()}}
		So(legacy.Deleted(), ShouldBeTrue)
	})

	Convey("Banned or deleted accounts count as suspended", t, func() {
		banned := User{Id: id, Status: ACTIVE, Login: Login{Email: "x@ideaboard.io", Banned: true}}
		So(banned.Suspended(), ShouldBeTrue)
		So(TombstoneProfile(id, banned.Created).Suspended(), ShouldBeTrue)
	})
}

func TestPublicViewRedaction(t *testing.T) {
	usr := User{
		Id: bson.NewObjectId(),
		Login: Login{
			Username: "fernandez14",
			Email:    "secret@ideaboard.io",
			Password: "$2a$14$notyourbusiness",
		},
		Personal: Personal{
			Avatar:   "https://cdn.ideaboard.io/a.png",
			Bio:      "building things",
			Name:     Name{First: "Felipe", Last: "R", Public: false},
			Birthday: Birthday{Public: false},
			Location: Location{Country: Country{Name: "Mexico", Public: true}},
			Contacts: Contacts{
				Email: Visible{Data: "public@ideaboard.io", Public: true},
				Phone: Visible{Data: "+52 123", Public: false},
				Links: []Link{
					{Title: "blog", URL: "https://blog.io", Public: true},
					{Title: "hideout", URL: "https://private.io", Public: false},
				},
			},
		},
		Power:  42,
		Follow: Follow{Followers: FollowSide{Count: 3}, Following: FollowSide{Count: 7}},
	}

	view := usr.PublicView()
	if view.Name != nil {
		t.Error("private name leaked into the public view")
	}
	if view.Birthday != nil {
		t.Error("private birthday leaked into the public view")
	}
	if view.Phone != nil {
		t.Error("private phone leaked into the public view")
	}
	if view.Country == nil || view.Country.Name != "Mexico" {
		t.Error("public country should show up")
	}
	if view.Email == nil || view.Email.Data != "public@ideaboard.io" {
		t.Error("public contact email should show up")
	}
	if len(view.Links) != 1 || view.Links[0].Title != "blog" {
		t.Errorf("only the public link should show up, got %v", view.Links)
	}
	if view.Followers != 3 || view.Following != 7 || view.Power != 42 {
		t.Error("counters should carry over untouched")
	}
}

func TestUsersMap(t *testing.T) {
	a := User{Id: bson.NewObjectId()}
	b := User{Id: bson.NewObjectId()}
	m := Users{a, b}.Map()
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m[a.Id].Id != a.Id || m[b.Id].Id != b.Id {
		t.Error("map should key users by id")
	}
}
