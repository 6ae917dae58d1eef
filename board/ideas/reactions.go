package ideas

import (
	"errors"

	"github.com/ideaboard/core/core/config"
	"gopkg.in/mgo.v2/bson"
)

var (
	ReactionExists  = errors.New("user already reacted that way")
	ReactionMissing = errors.New("user has no such reaction")
	SelfReaction    = errors.New("users cannot react to their own ideas")
	UnknownReaction = errors.New("unknown reaction kind")
)

func (s *Stats) add(usr bson.ObjectId) {
	s.Users = append(s.Users, usr)
	s.Count = len(s.Users)
}

func (s *Stats) remove(usr bson.ObjectId) {
	for n, ref := range s.Users {
		if ref == usr {
			s.Users = append(s.Users[:n], s.Users[n+1:]...)
			break
		}
	}
	s.Count = len(s.Users)
}

func (kind Reaction) opposite() Reaction {
	switch kind {
	case Upvote:
		return Downvote
	case Downvote:
		return Upvote
	}
	return ""
}

// addDelta is the author power change when kind lands on their idea.
func addDelta(kind Reaction, w config.PowerWeights) int {
	switch kind {
	case Favorite:
		return w.Favorite
	case Upvote:
		return w.Upvote
	case Downvote:
		return -w.Downvote
	}
	return 0
}

// AddReaction records usr's reaction on the idea in memory. Casting the
// opposite vote switches it instead of stacking. Returns the author
// power delta and the displaced reaction, if any.
func (idea *Idea) AddReaction(kind Reaction, usr bson.ObjectId, w config.PowerWeights) (delta int, switched Reaction, err error) {
	stats := idea.statsOf(kind)
	if stats == nil {
		return 0, "", UnknownReaction
	}
	if usr == idea.UserId {
		return 0, "", SelfReaction
	}
	if stats.Has(usr) {
		return 0, "", ReactionExists
	}
	if other := kind.opposite(); other != "" && idea.HasReaction(other, usr) {
		idea.statsOf(other).remove(usr)
		delta -= addDelta(other, w)
		switched = other
	}
	stats.add(usr)
	delta += addDelta(kind, w)
	return delta, switched, nil
}

// RemoveReaction takes usr's reaction back. Returns the author power
// delta undoing it.
func (idea *Idea) RemoveReaction(kind Reaction, usr bson.ObjectId, w config.PowerWeights) (int, error) {
	stats := idea.statsOf(kind)
	if stats == nil {
		return 0, UnknownReaction
	}
	if !stats.Has(usr) {
		return 0, ReactionMissing
	}
	stats.remove(usr)
	return -addDelta(kind, w), nil
}

// DeleteDelta is the author power change when the idea disappears along
// with all its reactions.
func (idea Idea) DeleteDelta(w config.PowerWeights) int {
	return idea.Downvotes.Count*w.Downvote - idea.Upvotes.Count*w.Upvote - idea.Favorites.Count*w.Favorite
}
