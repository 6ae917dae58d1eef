package comments

import (
	"time"

	"github.com/kennygrant/sanitize"
	"gopkg.in/mgo.v2/bson"
)

// Create inserts a new comment on an idea. The caller wires the ref into
// the idea and the author's interactions.
func Create(d deps, author, idea bson.ObjectId, content string) (Comment, error) {
	comment := Comment{
		Id:      bson.NewObjectId(),
		UserId:  author,
		IdeaId:  idea,
		Content: sanitize.HTML(content),
		Created: time.Now(),
		Updated: time.Now(),
	}
	if err := d.Mgo().C("comments").Insert(comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// UpdateContent rewrites the comment's text.
func UpdateContent(d deps, id bson.ObjectId, content string) error {
	return d.Mgo().C("comments").UpdateId(id, bson.M{
		"$set": bson.M{
			"content":    sanitize.HTML(content),
			"updated_at": time.Now(),
		},
	})
}

// Delete removes the comment document. The caller unlinks the ref from
// the idea and the author's interactions.
func Delete(d deps, id bson.ObjectId) error {
	return d.Mgo().C("comments").RemoveId(id)
}

// DeleteByIdea removes every comment hanging off an idea and returns the
// orphaned refs so the caller can unlink them from their authors.
func DeleteByIdea(d deps, idea bson.ObjectId) (Comments, error) {
	var orphans Comments
	c := d.Mgo().C("comments")
	if err := c.Find(bson.M{"idea_id": idea}).All(&orphans); err != nil {
		return nil, err
	}
	if _, err := c.RemoveAll(bson.M{"idea_id": idea}); err != nil {
		return nil, err
	}
	return orphans, nil
}
