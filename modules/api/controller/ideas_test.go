package controller

import (
	"testing"
)

func TestFeedScopes(t *testing.T) {
	scopes := feedScopes(false, "")
	if len(scopes) != 1 || scopes[0]["published"] != true {
		t.Errorf("strangers should only see published ideas, got %v", scopes)
	}

	if scopes := feedScopes(true, ""); len(scopes) != 0 {
		t.Errorf("admins should see drafts too, got %v", scopes)
	}

	scopes = feedScopes(false, "solar")
	if len(scopes) != 2 || scopes[1]["tags"] != "solar" {
		t.Errorf("tag filter should narrow the feed, got %v", scopes)
	}
}

func TestIdeaFormPublished(t *testing.T) {
	var form ideaForm
	if !form.published(true) || form.published(false) {
		t.Error("an omitted flag should keep the current state")
	}

	draft := false
	form.Published = &draft
	if form.published(true) {
		t.Error("an explicit false should unpublish the idea")
	}

	live := true
	form.Published = &live
	if !form.published(false) {
		t.Error("an explicit true should publish the idea")
	}
}
