package users

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

type status string

const (
	ACTIVE  status = "active"
	DELETED status = "deleted"
)

type User struct {
	Id           bson.ObjectId   `bson:"_id,omitempty" json:"id"`
	Status       status          `bson:"status" json:"status"`
	Login        Login           `bson:"login" json:"login"`
	Personal     Personal        `bson:"personal" json:"personal"`
	Ideas        []bson.ObjectId `bson:"ideas" json:"ideas"`
	Interactions Interactions    `bson:"interactions" json:"interactions"`
	Messages     Threads         `bson:"messages" json:"messages"`
	Power        int             `bson:"power" json:"power"`
	Follow       Follow          `bson:"follow" json:"follow"`
	Created      time.Time       `bson:"created_at" json:"created_at"`
	Updated      time.Time       `bson:"updated_at" json:"updated_at"`
}

type Login struct {
	Username string          `bson:"username" json:"username"`
	Email    string          `bson:"email" json:"email,omitempty"`
	Password string          `bson:"password" json:"-"`
	Admin    bool            `bson:"admin" json:"admin"`
	Banned   bool            `bson:"banned" json:"banned"`
	Reports  []bson.ObjectId `bson:"reports" json:"reports,omitempty"`
}

type Personal struct {
	Avatar   string   `bson:"avatar" json:"avatar"`
	Name     Name     `bson:"name" json:"name"`
	Birthday Birthday `bson:"birthday" json:"birthday"`
	Location Location `bson:"location" json:"location"`
	Bio      string   `bson:"bio" json:"bio"`
	Contacts Contacts `bson:"contacts" json:"contacts"`
}

type Name struct {
	First  string `bson:"first_name" json:"first_name"`
	Last   string `bson:"last_name" json:"last_name"`
	Public bool   `bson:"public" json:"public"`
}

type Birthday struct {
	Date   time.Time `bson:"date" json:"date"`
	Public bool      `bson:"public" json:"public"`
}

type Location struct {
	Country Country `bson:"country" json:"country"`
}

type Country struct {
	Name   string `bson:"name" json:"name"`
	Public bool   `bson:"public" json:"public"`
}

type Contacts struct {
	Email Visible `bson:"email" json:"email"`
	Phone Visible `bson:"phone" json:"phone"`
	Links []Link  `bson:"links" json:"links"`
}

type Visible struct {
	Data   string `bson:"data" json:"data"`
	Public bool   `bson:"public" json:"public"`
}

type Link struct {
	Title  string `bson:"title" json:"title"`
	URL    string `bson:"url" json:"url"`
	Public bool   `bson:"public" json:"public"`
}

type Interactions struct {
	Favorites []bson.ObjectId `bson:"favorites" json:"favorites"`
	Comments  []bson.ObjectId `bson:"comments" json:"comments"`
	Upvotes   []bson.ObjectId `bson:"upvotes" json:"upvotes"`
	Downvotes []bson.ObjectId `bson:"downvotes" json:"downvotes"`
}

type Follow struct {
	Followers FollowSide `bson:"followers" json:"followers"`
	Following FollowSide `bson:"following" json:"following"`
}

type FollowSide struct {
	Count int             `bson:"count" json:"count"`
	Users []bson.ObjectId `bson:"users" json:"users"`
}

// Deleted users keep their document (and id) around as a tombstone. The
// status tag is authoritative; the legacy email == id sentinel is still
// honored for documents written before the tag existed.
func (u User) Deleted() bool {
	return u.Status == DELETED || u.Login.Email == u.Id.Hex()
}

func (u User) Suspended() bool {
	return u.Login.Banned || u.Deleted()
}

func (u User) HasFollower(id bson.ObjectId) bool {
	for _, follower := range u.Follow.Followers.Users {
		if follower == id {
			return true
		}
	}
	return false
}

func (u User) IsFollowing(id bson.ObjectId) bool {
	for _, following := range u.Follow.Following.Users {
		if following == id {
			return true
		}
	}
	return false
}

type Users []User

func (all Users) Map() map[bson.ObjectId]User {
	m := make(map[bson.ObjectId]User, len(all))
	for _, item := range all {
		m[item.Id] = item
	}

	return m
}

// PublicProfile is the stranger facing view of a user; fields the owner
// flagged private are left out of the payload entirely.
type PublicProfile struct {
	Id        bson.ObjectId   `json:"id"`
	Username  string          `json:"username"`
	Avatar    string          `json:"avatar"`
	Bio       string          `json:"bio"`
	Name      *Name           `json:"name,omitempty"`
	Birthday  *Birthday       `json:"birthday,omitempty"`
	Country   *Country        `json:"country,omitempty"`
	Email     *Visible        `json:"email,omitempty"`
	Phone     *Visible        `json:"phone,omitempty"`
	Links     []Link          `json:"links"`
	Power     int             `json:"power"`
	Followers int             `json:"followers"`
	Following int             `json:"following"`
	Ideas     []bson.ObjectId `json:"ideas"`
}

func (u User) PublicView() PublicProfile {
	profile := PublicProfile{
		Id:        u.Id,
		Username:  u.Login.Username,
		Avatar:    u.Personal.Avatar,
		Bio:       u.Personal.Bio,
		Links:     []Link{},
		Power:     u.Power,
		Followers: u.Follow.Followers.Count,
		Following: u.Follow.Following.Count,
		Ideas:     u.Ideas,
	}
	if u.Personal.Name.Public {
		name := u.Personal.Name
		profile.Name = &name
	}
	if u.Personal.Birthday.Public {
		birthday := u.Personal.Birthday
		profile.Birthday = &birthday
	}
	if u.Personal.Location.Country.Public {
		country := u.Personal.Location.Country
		profile.Country = &country
	}
	if u.Personal.Contacts.Email.Public {
		email := u.Personal.Contacts.Email
		profile.Email = &email
	}
	if u.Personal.Contacts.Phone.Public {
		phone := u.Personal.Contacts.Phone
		profile.Phone = &phone
	}
	for _, link := range u.Personal.Contacts.Links {
		if link.Public {
			profile.Links = append(profile.Links, link)
		}
	}
	return profile
}
