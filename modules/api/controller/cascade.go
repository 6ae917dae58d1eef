package controller

import (
	"github.com/ideaboard/core/board/comments"
	"github.com/ideaboard/core/board/ideas"
	"github.com/ideaboard/core/board/messages"
	"github.com/ideaboard/core/board/tags"
	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/config"
	"github.com/ideaboard/core/deps"
	"gopkg.in/mgo.v2/bson"
)

// deleteIdea fans out the bookkeeping around removing an idea: every
// participant loses the interaction ref, the author gives back the
// accumulated power, comments go away on both sides and tag counters
// drop. Per item failures are logged and skipped, nothing wraps the fan
// out in a transaction.
func deleteIdea(idea ideas.Idea) error {
	d := deps.Container
	log := d.Log()
	w := config.C.Rules().Power

	for kind, stats := range map[ideas.Reaction]ideas.Stats{
		ideas.Favorite: idea.Favorites,
		ideas.Upvote:   idea.Upvotes,
		ideas.Downvote: idea.Downvotes,
	} {
		for _, ref := range stats.Users {
			if err := users.PullInteraction(d, ref, string(kind), idea.Id); err != nil {
				log.Error(err)
			}
		}
	}
	if delta := idea.DeleteDelta(w); delta != 0 {
		if err := users.PowerUpdate(d, idea.UserId, delta); err != nil {
			log.Error(err)
		}
	}

	orphans, err := comments.DeleteByIdea(d, idea.Id)
	if err != nil {
		log.Error(err)
	}
	for _, comment := range orphans {
		if err := users.PullInteraction(d, comment.UserId, "comments", comment.Id); err != nil {
			log.Error(err)
		}
	}

	if err := tags.Detach(d, idea.Tags, idea.Id); err != nil {
		log.Error(err)
	}
	if err := users.PullIdea(d, idea.UserId, idea.Id); err != nil {
		log.Error(err)
	}
	return ideas.Delete(d, idea.Id)
}

// purgeUser unwinds everything an account participated in before the
// tombstone reset: reactions it cast, follow relationships on both
// sides, this side of every conversation, and (on request) its authored
// comments and ideas.
func purgeUser(usr users.User, purgeIdeas, purgeComments bool) error {
	d := deps.Container
	log := d.Log()
	w := config.C.Rules().Power

	// take back every reaction this user cast, reversing the power it
	// granted other authors
	for kind, refs := range map[ideas.Reaction][]bson.ObjectId{
		ideas.Favorite: usr.Interactions.Favorites,
		ideas.Upvote:   usr.Interactions.Upvotes,
		ideas.Downvote: usr.Interactions.Downvotes,
	} {
		for _, ref := range refs {
			idea, err := ideas.FindId(d, ref)
			if err != nil {
				continue
			}
			delta, err := idea.RemoveReaction(kind, usr.Id, w)
			if err != nil {
				continue
			}
			if err := ideas.UpdateReactions(d, idea); err != nil {
				log.Error(err)
				continue
			}
			if delta != 0 {
				if err := users.PowerUpdate(d, idea.UserId, delta); err != nil {
					log.Error(err)
				}
			}
		}
	}

	if purgeComments {
		for _, ref := range usr.Interactions.Comments {
			comment, err := comments.FindId(d, ref)
			if err != nil {
				continue
			}
			if err := comments.Delete(d, comment.Id); err != nil {
				log.Error(err)
				continue
			}
			if err := ideas.PullComment(d, comment.IdeaId, comment.Id); err != nil {
				log.Error(err)
			}
		}
	}

	if purgeIdeas {
		for _, ref := range usr.Ideas {
			idea, err := ideas.FindId(d, ref)
			if err != nil {
				continue
			}
			if err := deleteIdea(idea); err != nil {
				log.Error(err)
			}
		}
	}

	// unwind both sides of every follow relationship
	for _, ref := range usr.Follow.Followers.Users {
		follower, err := users.FindId(d, ref)
		if err != nil {
			continue
		}
		if err := users.StopFollowing(d, follower, usr); err != nil {
			log.Error(err)
		}
	}
	for _, ref := range usr.Follow.Following.Users {
		followed, err := users.FindId(d, ref)
		if err != nil {
			continue
		}
		if err := users.StopFollowing(d, usr, followed); err != nil {
			log.Error(err)
		}
	}

	// drop this side of every conversation; messages the peer no longer
	// references go away for good
	for _, thread := range usr.Messages {
		peer, err := users.FindId(d, thread.Penpal)
		orphaned := []bson.ObjectId{}
		for _, ref := range thread.List {
			if err != nil || !peer.Messages.Has(usr.Id, ref) {
				orphaned = append(orphaned, ref)
			}
		}
		if err := messages.DeleteMany(d, orphaned); err != nil {
			log.Error(err)
		}
	}

	_, err := users.Tombstone(d, usr)
	return err
}
