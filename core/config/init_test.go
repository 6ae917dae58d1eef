package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeRulesDefaults(t *testing.T) {
	rules := decodeRules(map[string]interface{}{})
	if rules.Power.Favorite != 10 || rules.Power.Upvote != 1 || rules.Power.Downvote != 1 {
		t.Errorf("default power weights off: %+v", rules.Power)
	}
	if rules.Limits.TagsPerIdea != 5 || rules.Limits.LinksPerProfile != 5 {
		t.Errorf("default limits off: %+v", rules.Limits)
	}
}

func TestDecodeRulesOverride(t *testing.T) {
	rules := decodeRules(map[string]interface{}{
		"rules": map[string]interface{}{
			"power":  map[string]interface{}{"favorite": 25},
			"limits": map[string]interface{}{"tagsPerIdea": 3},
		},
	})
	if rules.Power.Favorite != 25 {
		t.Errorf("favorite weight = %d, want 25", rules.Power.Favorite)
	}
	if rules.Power.Upvote != 1 {
		t.Errorf("unset weights should keep their default, got %d", rules.Power.Upvote)
	}
	if rules.Limits.TagsPerIdea != 3 {
		t.Errorf("tag limit = %d, want 3", rules.Limits.TagsPerIdea)
	}
}

func TestMergeLayersFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "boardcfg")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "base.hjson")
	local := filepath.Join(dir, "local.hjson")
	if err := ioutil.WriteFile(base, []byte(`{site: {name: base}, rules: {power: {favorite: 10}}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(local, []byte(`{site: {name: local}}`), 0644); err != nil {
		t.Fatal(err)
	}

	c := new(Config)
	c.Reload = make(chan bool, 4)
	c.Merge(base)
	c.Merge(local)

	merged := c.Copy()
	site := merged["site"].(map[string]interface{})
	if site["name"] != "local" {
		t.Errorf("the later file should win, got %v", site["name"])
	}
	if c.Rules().Power.Favorite != 10 {
		t.Errorf("rules from the base file should survive, got %d", c.Rules().Power.Favorite)
	}
}
