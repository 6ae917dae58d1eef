package users

import (
	"gopkg.in/mgo.v2/bson"
)

// Thread is one side of a private conversation: the list of message ids
// exchanged with a penpal, plus whether this side has read the latest.
type Thread struct {
	Penpal bson.ObjectId   `bson:"penpal" json:"penpal"`
	List   []bson.ObjectId `bson:"messages" json:"messages"`
	Read   bool            `bson:"read" json:"read"`
}

type Threads []Thread

func (ls Threads) index(penpal bson.ObjectId) int {
	for n, thread := range ls {
		if thread.Penpal == penpal {
			return n
		}
	}
	return -1
}

// WithPenpal returns the message list of the conversation with penpal.
func (ls Threads) WithPenpal(penpal bson.ObjectId) ([]bson.ObjectId, bool) {
	if n := ls.index(penpal); n >= 0 {
		return ls[n].List, true
	}
	return nil, false
}

// Has reports whether the conversation with penpal contains message id.
func (ls Threads) Has(penpal, id bson.ObjectId) bool {
	n := ls.index(penpal)
	if n < 0 {
		return false
	}
	for _, ref := range ls[n].List {
		if ref == id {
			return true
		}
	}
	return false
}

// Append adds a message to the conversation with penpal, creating the
// thread when it is the first exchange. The thread is left unread so the
// owner gets notified about the new message.
func (ls Threads) Append(penpal, id bson.ObjectId) Threads {
	if n := ls.index(penpal); n >= 0 {
		ls[n].List = append(ls[n].List, id)
		ls[n].Read = false
		return ls
	}
	return append(ls, Thread{Penpal: penpal, List: []bson.ObjectId{id}, Read: false})
}

// MarkRead flags the conversation with penpal as read. Returns false when
// no such conversation exists.
func (ls Threads) MarkRead(penpal bson.ObjectId) bool {
	if n := ls.index(penpal); n >= 0 {
		ls[n].Read = true
		return true
	}
	return false
}

// MarkUnread flags the conversation with penpal as unread.
func (ls Threads) MarkUnread(penpal bson.ObjectId) bool {
	if n := ls.index(penpal); n >= 0 {
		ls[n].Read = false
		return true
	}
	return false
}

// RemoveMessage drops a single message from the conversation with penpal.
// The thread itself goes away once its last message is removed.
func (ls Threads) RemoveMessage(penpal, id bson.ObjectId) (Threads, bool) {
	n := ls.index(penpal)
	if n < 0 {
		return ls, false
	}
	list := ls[n].List
	for i, ref := range list {
		if ref == id {
			ls[n].List = append(list[:i], list[i+1:]...)
			if len(ls[n].List) == 0 {
				return append(ls[:n], ls[n+1:]...), true
			}
			return ls, true
		}
	}
	return ls, false
}

// RemoveThread drops the whole conversation with penpal and hands back the
// message ids it held so the caller can garbage collect them.
func (ls Threads) RemoveThread(penpal bson.ObjectId) (Threads, []bson.ObjectId, bool) {
	n := ls.index(penpal)
	if n < 0 {
		return ls, nil, false
	}
	removed := ls[n].List
	return append(ls[:n], ls[n+1:]...), removed, true
}
