package tags

import (
	"time"

	"github.com/ideaboard/core/modules/helpers"
	"gopkg.in/mgo.v2/bson"
)

// Attach links an idea to every title, bumping usage counts and creating
// missing tags on the fly. Titles must already be normalized.
func Attach(d deps, titles []string, idea bson.ObjectId) error {
	c := d.Mgo().C("tags")
	for _, title := range titles {
		_, err := c.Upsert(bson.M{"title": title}, bson.M{
			"$inc":      bson.M{"count": 1},
			"$addToSet": bson.M{"ideas": idea},
			"$set":      bson.M{"updated_at": time.Now()},
			"$setOnInsert": bson.M{
				"title":      title,
				"slug":       helpers.StrSlug(title),
				"created_at": time.Now(),
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Detach unlinks an idea from every title, dropping usage counts and
// garbage collecting tags no idea references anymore.
func Detach(d deps, titles []string, idea bson.ObjectId) error {
	c := d.Mgo().C("tags")
	for _, title := range titles {
		err := c.Update(bson.M{"title": title}, bson.M{
			"$inc":  bson.M{"count": -1},
			"$pull": bson.M{"ideas": idea},
			"$set":  bson.M{"updated_at": time.Now()},
		})
		if err != nil {
			return err
		}
	}
	_, err := c.RemoveAll(bson.M{"count": bson.M{"$lt": 1}})
	return err
}
