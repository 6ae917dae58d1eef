package ideas

import (
	"testing"

	"github.com/ideaboard/core/core/config"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/mgo.v2/bson"
)

var weights = config.PowerWeights{Favorite: 10, Upvote: 1, Downvote: 1}

func TestAddReaction(t *testing.T) {
	author := bson.NewObjectId()
	voter := bson.NewObjectId()

	Convey("Reactions and author power", t, func() {

		Convey("A favorite is worth ten", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			delta, switched, err := idea.AddReaction(Favorite, voter, weights)
			So(err, ShouldBeNil)
			So(delta, ShouldEqual, 10)
			So(switched, ShouldEqual, Reaction(""))
			So(idea.Favorites.Count, ShouldEqual, 1)
			So(idea.HasReaction(Favorite, voter), ShouldBeTrue)
		})

		Convey("A downvote takes one away", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			delta, _, err := idea.AddReaction(Downvote, voter, weights)
			So(err, ShouldBeNil)
			So(delta, ShouldEqual, -1)
		})

		Convey("Reacting to your own idea fails", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			for _, kind := range []Reaction{Favorite, Upvote, Downvote} {
				_, _, err := idea.AddReaction(kind, author, weights)
				So(err, ShouldEqual, SelfReaction)
			}
		})

		Convey("Reacting twice the same way fails", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			idea.AddReaction(Upvote, voter, weights)
			_, _, err := idea.AddReaction(Upvote, voter, weights)
			So(err, ShouldEqual, ReactionExists)
			So(idea.Upvotes.Count, ShouldEqual, 1)
		})

		Convey("Casting the opposite vote switches it", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			idea.AddReaction(Downvote, voter, weights)

			delta, switched, err := idea.AddReaction(Upvote, voter, weights)
			So(err, ShouldBeNil)
			So(switched, ShouldEqual, Downvote)
			// undo the downvote (+1) and land the upvote (+1)
			So(delta, ShouldEqual, 2)
			So(idea.Downvotes.Count, ShouldEqual, 0)
			So(idea.Upvotes.Count, ShouldEqual, 1)
		})

		Convey("A favorite stacks with a vote", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			idea.AddReaction(Upvote, voter, weights)
			delta, switched, err := idea.AddReaction(Favorite, voter, weights)
			So(err, ShouldBeNil)
			So(switched, ShouldEqual, Reaction(""))
			So(delta, ShouldEqual, 10)
			So(idea.Upvotes.Count, ShouldEqual, 1)
		})
	})
}

func TestRemoveReaction(t *testing.T) {
	author := bson.NewObjectId()
	voter := bson.NewObjectId()

	Convey("Taking reactions back", t, func() {

		Convey("Removing a favorite undoes its power", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			idea.AddReaction(Favorite, voter, weights)
			delta, err := idea.RemoveReaction(Favorite, voter, weights)
			So(err, ShouldBeNil)
			So(delta, ShouldEqual, -10)
			So(idea.Favorites.Count, ShouldEqual, 0)
		})

		Convey("Removing a downvote gives the point back", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			idea.AddReaction(Downvote, voter, weights)
			delta, err := idea.RemoveReaction(Downvote, voter, weights)
			So(err, ShouldBeNil)
			So(delta, ShouldEqual, 1)
		})

		Convey("Removing what is not there fails", func() {
			idea := Idea{Id: bson.NewObjectId(), UserId: author}
			_, err := idea.RemoveReaction(Upvote, voter, weights)
			So(err, ShouldEqual, ReactionMissing)
		})
	})
}

func TestDeleteDelta(t *testing.T) {
	idea := Idea{
		Favorites: Stats{Count: 2},
		Upvotes:   Stats{Count: 5},
		Downvotes: Stats{Count: 3},
	}
	// 3 downvotes undone, minus 5 upvotes, minus 2 favorites worth ten
	if delta := idea.DeleteDelta(weights); delta != 3-5-20 {
		t.Errorf("delete delta = %d, want %d", delta, 3-5-20)
	}
	if delta := (Idea{}).DeleteDelta(weights); delta != 0 {
		t.Errorf("untouched idea should delete with no power change, got %d", delta)
	}
}

func TestMaskAnonymous(t *testing.T) {
	author := bson.NewObjectId()
	stranger := bson.NewObjectId()

	list := Ideas{
		{Id: bson.NewObjectId(), UserId: author, Anonymous: true},
		{Id: bson.NewObjectId(), UserId: author, Anonymous: false},
	}

	masked := make(Ideas, len(list))
	copy(masked, list)
	masked.Mask(stranger, false)
	if masked[0].UserId != "" {
		t.Error("strangers should not see the author of an anonymous idea")
	}
	if masked[1].UserId != author {
		t.Error("named ideas keep their author")
	}

	own := make(Ideas, len(list))
	copy(own, list)
	own.Mask(author, false)
	if own[0].UserId != author {
		t.Error("the author should see themselves")
	}

	mod := make(Ideas, len(list))
	copy(mod, list)
	mod.Mask(stranger, true)
	if mod[0].UserId != author {
		t.Error("admins should see through anonymity")
	}
}

func TestUsersScope(t *testing.T) {
	author := bson.NewObjectId()
	other := bson.NewObjectId()
	list := Ideas{
		{UserId: author},
		{UserId: author},
		{UserId: other},
		{UserId: ""},
	}
	scope := list.UsersScope()
	in, ok := scope["_id"].(bson.M)
	if !ok {
		t.Fatal("scope should constrain _id")
	}
	authors := in["$in"].([]bson.ObjectId)
	if len(authors) != 2 {
		t.Fatalf("expected 2 unique visible authors, got %d", len(authors))
	}
}
