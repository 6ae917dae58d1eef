package reports

import (
	"errors"
	"time"

	"gopkg.in/mgo.v2/bson"
)

var DuplicateReport = errors.New("user already reported this content")

// File records a complaint about a piece of content owned by target.
// The first report creates the document with a frozen snapshot; later
// ones pile up as entries. The same reporter cannot pile on twice.
func File(d deps, kind string, content, target, by bson.ObjectId, description string, snapshot bson.M) (Report, error) {
	c := d.Mgo().C("reports")
	entry := Entry{By: by, Description: description, Created: time.Now()}

	existing, err := FindContent(d, content)
	if err == nil {
		if existing.HasReporter(by) {
			return existing, DuplicateReport
		}
		err = c.UpdateId(existing.Id, bson.M{
			"$push": bson.M{"entries": entry},
			"$inc":  bson.M{"report_count": 1},
			"$set":  bson.M{"updated_at": time.Now()},
		})
		if err != nil {
			return Report{}, err
		}
		return FindId(d, existing.Id)
	}
	if err != ReportNotFound {
		return Report{}, err
	}

	report := Report{
		Id:        bson.NewObjectId(),
		ContentId: content,
		Kind:      kind,
		UserId:    target,
		Status:    StatusNew,
		Snapshot:  snapshot,
		Entries:   []Entry{entry},
		Count:     1,
		Created:   time.Now(),
		Updated:   time.Now(),
	}
	if err := c.Insert(report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// Assign hands the report to a moderator and moves it to pending. The
// caller checks the assignee really is one.
func Assign(d deps, id, admin bson.ObjectId) error {
	return d.Mgo().C("reports").UpdateId(id, bson.M{
		"$set": bson.M{"assigned": admin, "status": StatusPending, "updated_at": time.Now()},
	})
}

// UpdateStatus moves the report through its lifecycle.
func UpdateStatus(d deps, id bson.ObjectId, status string) error {
	if !ValidStatus(status) {
		return errors.New("unknown report status: " + status)
	}
	return d.Mgo().C("reports").UpdateId(id, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
}

// Delete removes a resolved report.
func Delete(d deps, id bson.ObjectId) error {
	return d.Mgo().C("reports").RemoveId(id)
}
