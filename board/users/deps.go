package users

import (
	"github.com/xuyu/goredis"
	"gopkg.in/mgo.v2"
)

type deps interface {
	Mgo() *mgo.Database
	Cache() *goredis.Redis
}
