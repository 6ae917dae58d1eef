package ideas

import (
	"time"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2/bson"
)

// Reaction kinds double as the interaction field names on the user doc.
type Reaction string

const (
	Favorite Reaction = "favorites"
	Upvote   Reaction = "upvotes"
	Downvote Reaction = "downvotes"
)

// Stats is one reaction counter pair: how many and who.
type Stats struct {
	Count int             `bson:"count" json:"count"`
	Users []bson.ObjectId `bson:"users" json:"users"`
}

func (s Stats) Has(id bson.ObjectId) bool {
	for _, usr := range s.Users {
		if usr == id {
			return true
		}
	}
	return false
}

type Idea struct {
	Id          bson.ObjectId   `bson:"_id,omitempty" json:"id"`
	UserId      bson.ObjectId   `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description"`
	Published   bool            `bson:"published" json:"published"`
	Anonymous   bool            `bson:"anonymous" json:"anonymous"`
	Tags        []string        `bson:"tags" json:"tags"`
	Favorites   Stats           `bson:"favorites" json:"favorites"`
	Upvotes     Stats           `bson:"upvotes" json:"upvotes"`
	Downvotes   Stats           `bson:"downvotes" json:"downvotes"`
	Comments    []bson.ObjectId `bson:"comments" json:"comments"`
	Created     time.Time       `bson:"created_at" json:"created_at"`
	Updated     time.Time       `bson:"updated_at" json:"updated_at"`
}

func (idea *Idea) statsOf(kind Reaction) *Stats {
	switch kind {
	case Favorite:
		return &idea.Favorites
	case Upvote:
		return &idea.Upvotes
	case Downvote:
		return &idea.Downvotes
	}
	return nil
}

// HasReaction reports whether usr already reacted with kind.
func (idea *Idea) HasReaction(kind Reaction, usr bson.ObjectId) bool {
	if stats := idea.statsOf(kind); stats != nil {
		return stats.Has(usr)
	}
	return false
}

// Mask hides the author of an anonymous idea from everyone but the
// author and the admins.
func (idea *Idea) Mask(viewer bson.ObjectId, admin bool) {
	if idea.Anonymous && idea.UserId != viewer && !admin {
		idea.UserId = ""
	}
}

type Ideas []Idea

// Mask hides anonymous authors across the whole list.
func (list Ideas) Mask(viewer bson.ObjectId, admin bool) {
	for n := range list {
		list[n].Mask(viewer, admin)
	}
}

// UsersScope builds a criteria fragment matching the (visible) authors,
// so callers can join author profiles in a single query.
func (list Ideas) UsersScope() common.Scope {
	var authors []bson.ObjectId
	seen := map[bson.ObjectId]bool{}
	for _, idea := range list {
		if idea.UserId == "" || seen[idea.UserId] {
			continue
		}
		seen[idea.UserId] = true
		authors = append(authors, idea.UserId)
	}
	return common.WithinID(authors)
}
