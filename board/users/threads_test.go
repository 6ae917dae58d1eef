package users

import (
	"testing"

	"gopkg.in/mgo.v2/bson"
)

func TestThreadsAppend(t *testing.T) {
	penpal := bson.NewObjectId()
	first := bson.NewObjectId()
	second := bson.NewObjectId()

	var ls Threads
	ls = ls.Append(penpal, first)
	if len(ls) != 1 {
		t.Fatalf("expected one thread, got %d", len(ls))
	}
	if ls[0].Read {
		t.Error("a fresh thread must start unread")
	}

	ls.MarkRead(penpal)
	ls = ls.Append(penpal, second)
	if len(ls) != 1 {
		t.Fatalf("append to the same penpal must reuse the thread, got %d", len(ls))
	}
	if len(ls[0].List) != 2 {
		t.Fatalf("expected two messages, got %d", len(ls[0].List))
	}
	if ls[0].Read {
		t.Error("appending must flag the thread unread again")
	}
	if !ls.Has(penpal, first) || !ls.Has(penpal, second) {
		t.Error("thread should contain both messages")
	}
	if ls.Has(bson.NewObjectId(), first) {
		t.Error("unknown penpal should not match")
	}
}

func TestThreadsMarkReadUnread(t *testing.T) {
	penpal := bson.NewObjectId()
	ls := Threads{}.Append(penpal, bson.NewObjectId())

	if !ls.MarkRead(penpal) {
		t.Fatal("existing thread should be markable")
	}
	if !ls[0].Read {
		t.Error("thread should be read after MarkRead")
	}
	if !ls.MarkUnread(penpal) {
		t.Fatal("existing thread should be markable")
	}
	if ls[0].Read {
		t.Error("thread should be unread after MarkUnread")
	}
	if ls.MarkRead(bson.NewObjectId()) {
		t.Error("unknown penpal should not be markable")
	}
}

func TestThreadsRemoveMessage(t *testing.T) {
	penpal := bson.NewObjectId()
	first := bson.NewObjectId()
	second := bson.NewObjectId()
	ls := Threads{}.Append(penpal, first).Append(penpal, second)

	ls, removed := ls.RemoveMessage(penpal, first)
	if !removed {
		t.Fatal("message should have been removed")
	}
	if len(ls) != 1 || len(ls[0].List) != 1 || ls[0].List[0] != second {
		t.Fatal("thread should keep only the second message")
	}

	// dropping the last message drops the whole thread
	ls, removed = ls.RemoveMessage(penpal, second)
	if !removed {
		t.Fatal("message should have been removed")
	}
	if len(ls) != 0 {
		t.Fatalf("empty thread should go away, got %d threads", len(ls))
	}

	if _, removed = ls.RemoveMessage(penpal, second); removed {
		t.Error("removing from a gone thread should report false")
	}
}

func TestThreadsRemoveThread(t *testing.T) {
	penpal := bson.NewObjectId()
	other := bson.NewObjectId()
	first := bson.NewObjectId()
	second := bson.NewObjectId()
	ls := Threads{}.Append(penpal, first).Append(penpal, second).Append(other, bson.NewObjectId())

	ls, orphans, removed := ls.RemoveThread(penpal)
	if !removed {
		t.Fatal("thread should have been removed")
	}
	if len(orphans) != 2 || orphans[0] != first || orphans[1] != second {
		t.Fatal("removal should hand back the message ids it held")
	}
	if len(ls) != 1 || ls[0].Penpal != other {
		t.Fatal("the other conversation should survive")
	}

	if _, _, removed := ls.RemoveThread(penpal); removed {
		t.Error("removing a gone thread should report false")
	}
}
