package reports

import (
	"errors"

	"github.com/ideaboard/core/core/common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

var ReportNotFound = errors.New("report has not been found by given criteria")

// FindId gets a report by its document id.
func FindId(d deps, id bson.ObjectId) (report Report, err error) {
	err = d.Mgo().C("reports").FindId(id).One(&report)
	if err == mgo.ErrNotFound {
		err = ReportNotFound
	}
	return
}

// FindContent gets the single report tracking a piece of content.
func FindContent(d deps, content bson.ObjectId) (report Report, err error) {
	err = d.Mgo().C("reports").Find(bson.M{"content_id": content}).One(&report)
	if err == mgo.ErrNotFound {
		err = ReportNotFound
	}
	return
}

// FindList gets reports matching the merged scopes, most reported first.
func FindList(d deps, scopes ...common.Scope) (list Reports, err error) {
	err = d.Mgo().C("reports").Find(common.ByScope(scopes...)).Sort("-report_count").All(&list)
	return
}
