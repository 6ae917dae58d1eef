package ideas

import (
	"time"

	"github.com/kennygrant/sanitize"
	"gopkg.in/mgo.v2/bson"
)

// Create inserts a new idea. Tags must already be normalized; markup in
// the user supplied text gets stripped.
func Create(d deps, author bson.ObjectId, title, description string, published, anonymous bool, tags []string) (Idea, error) {
	idea := Idea{
		Id:          bson.NewObjectId(),
		UserId:      author,
		Title:       sanitize.HTML(title),
		Description: sanitize.HTML(description),
		Published:   published,
		Anonymous:   anonymous,
		Tags:        tags,
		Favorites:   Stats{Users: []bson.ObjectId{}},
		Upvotes:     Stats{Users: []bson.ObjectId{}},
		Downvotes:   Stats{Users: []bson.ObjectId{}},
		Comments:    []bson.ObjectId{},
		Created:     time.Now(),
		Updated:     time.Now(),
	}
	if err := d.Mgo().C("ideas").Insert(idea); err != nil {
		return Idea{}, err
	}
	return idea, nil
}

// Update persists the editable fields of an idea.
func Update(d deps, idea Idea) error {
	return d.Mgo().C("ideas").UpdateId(idea.Id, bson.M{
		"$set": bson.M{
			"title":       sanitize.HTML(idea.Title),
			"description": sanitize.HTML(idea.Description),
			"published":   idea.Published,
			"anonymous":   idea.Anonymous,
			"tags":        idea.Tags,
			"updated_at":  time.Now(),
		},
	})
}

// Delete removes the idea document for good.
func Delete(d deps, id bson.ObjectId) error {
	return d.Mgo().C("ideas").RemoveId(id)
}

// UpdateReactions persists the three reaction pairs after in memory
// bookkeeping.
func UpdateReactions(d deps, idea Idea) error {
	return d.Mgo().C("ideas").UpdateId(idea.Id, bson.M{
		"$set": bson.M{
			"favorites": idea.Favorites,
			"upvotes":   idea.Upvotes,
			"downvotes": idea.Downvotes,
		},
	})
}

// PushComment links a comment ref into the idea.
func PushComment(d deps, id, comment bson.ObjectId) error {
	return d.Mgo().C("ideas").UpdateId(id, bson.M{
		"$push": bson.M{"comments": comment},
	})
}

// PullComment unlinks a comment ref from the idea.
func PullComment(d deps, id, comment bson.ObjectId) error {
	return d.Mgo().C("ideas").UpdateId(id, bson.M{
		"$pull": bson.M{"comments": comment},
	})
}
