package config

import (
	"bytes"
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/divideandconquer/go-merge/merge"
)

func MergeUpdate(config map[string]interface{}) error {

	// Copy of current runtime config.
	current := C.Copy()
	merged := merge.Merge(current, config).(map[string]interface{})
	buf := new(bytes.Buffer)
	encoder := toml.NewEncoder(buf)

	if err := encoder.Encode(merged); err != nil {
		return err
	}

	if err := ioutil.WriteFile("./board.toml", buf.Bytes(), 0644); err != nil {
		return err
	}

	// Apply to the running config right away; rule changes like power
	// weights must not wait for a restart.
	C.Apply(merged)

	return nil
}
