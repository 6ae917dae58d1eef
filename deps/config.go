package deps

import (
	"os"

	"github.com/olebedev/config"
)

var (
	// MongoURL config uri
	MongoURL string
	// MongoName db name
	MongoName string
)

func IgniteConfig(d Deps) (container Deps, err error) {
	envfile := os.Getenv("ENV_FILE")
	if envfile == "" {
		envfile = "./env.json"
	}

	cnf, err := config.ParseJsonFile(envfile)
	if err != nil {
		log.Error(err)
		return d, err
	}

	if MongoURL == "" {
		MongoURL = cnf.UString("database.url", "mongodb://localhost:27017")
	}
	if MongoName == "" {
		MongoName = cnf.UString("database.name", "ideaboard")
	}

	d.ConfigProvider = cnf
	container = d
	return
}
