package deps

import (
	"flag"

	"gopkg.in/mgo.v2"
)

var (
	ShouldSeed = flag.Bool("should-seed", false, "determines whether we seed the initial admin user to bootstrap the board")
)

func IgniteMongoDB(container Deps) (Deps, error) {
	session, err := mgo.Dial(MongoURL)
	if err != nil {
		log.Error(err)
		log.Info(MongoURL)
		return container, err
	}
	db := session.DB(MongoName)
	collections, err := db.CollectionNames()
	if err != nil {
		return container, err
	}
	seed := true
	for _, v := range collections {
		if v == "users" {
			seed = false
			break
		}
	}
	if seed {
		ShouldSeed = &seed
	}
	// Ensure indexes
	db.C("users").EnsureIndex(
		mgo.Index{
			Key:        []string{"login.email"},
			Unique:     true,
			Background: true,
		},
	)
	db.C("users").EnsureIndex(
		mgo.Index{
			Key:        []string{"login.username"},
			Unique:     true,
			Background: true,
		},
	)
	db.C("tags").EnsureIndex(
		mgo.Index{
			Key:        []string{"title"},
			Unique:     true,
			Background: true,
		},
	)
	db.C("reports").EnsureIndex(
		mgo.Index{
			Key:        []string{"content_id"},
			Unique:     true,
			Background: true,
		},
	)

	container.DatabaseSessionProvider = session
	container.DatabaseProvider = db

	return container, nil
}
