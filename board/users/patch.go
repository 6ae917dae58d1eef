package users

import (
	"encoding/json"
	"time"

	"github.com/imdario/mergo"
)

// Fields a profile patch may never touch directly; they are maintained
// by their own mutators.
var protectedFields = []string{
	"id", "_id", "status", "power", "ideas",
	"interactions", "messages", "follow",
	"created_at", "updated_at",
}

// StripProtected removes fields the requester is not allowed to patch.
// Only admins may flip the admin/banned switches.
func StripProtected(patch map[string]interface{}, admin bool) {
	for _, field := range protectedFields {
		delete(patch, field)
	}
	if login, ok := patch["login"].(map[string]interface{}); ok {
		delete(login, "reports")
		if !admin {
			delete(login, "admin")
			delete(login, "banned")
		}
	}
}

// MergePatch applies a partial profile update over an existing user.
// Nested objects merge key by key, lists get overwritten wholesale. A
// login.password present in the patch must already be hashed.
func MergePatch(usr User, patch map[string]interface{}) (User, error) {
	var password string
	if login, ok := patch["login"].(map[string]interface{}); ok {
		if hash, ok := login["password"].(string); ok {
			password = hash
		}
		delete(login, "password")
	}

	current := map[string]interface{}{}
	encoded, err := json.Marshal(usr)
	if err != nil {
		return usr, err
	}
	if err := json.Unmarshal(encoded, &current); err != nil {
		return usr, err
	}
	if err := mergo.Merge(&current, patch, mergo.WithOverride); err != nil {
		return usr, err
	}

	var merged User
	encoded, err = json.Marshal(current)
	if err != nil {
		return usr, err
	}
	if err := json.Unmarshal(encoded, &merged); err != nil {
		return usr, err
	}

	// The password hash never travels through json.
	merged.Id = usr.Id
	merged.Login.Password = usr.Login.Password
	if password != "" {
		merged.Login.Password = password
	}
	merged.Login.Reports = usr.Login.Reports
	merged.Created = usr.Created
	merged.Updated = time.Now()
	return merged, nil
}

// UpdateProfile persists a merged user document in place.
func UpdateProfile(d deps, usr User) error {
	return d.Mgo().C("users").UpdateId(usr.Id, usr)
}
