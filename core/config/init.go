package config

import (
	"encoding/json"
	"io/ioutil"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/hjson/hjson-go"
	"github.com/imdario/mergo"
)

var (
	// C stands for config
	C *Config
)

func Bootstrap() {
	C = new(Config)
	C.Reload = make(chan bool)
	C.Merge("./static/resources/board.hjson")
	C.Merge("./board.hjson")

	// Watch config file
	go C.WatchFile("./board.hjson")
}

type Config struct {
	Reload  chan bool
	current *map[string]interface{}
	rules   Rules
}

func (c *Config) Copy() map[string]interface{} {
	return *c.current
}

// Rules returns the typed board rules decoded from the merged config.
func (c *Config) Rules() Rules {
	return c.rules
}

// Apply swaps the runtime config for an already merged map.
func (c *Config) Apply(merged map[string]interface{}) {
	c.current = &merged
	c.rules = decodeRules(merged)

	go func() {
		c.Reload <- true
	}()
}

func (c *Config) Merge(file string) {
	var config map[string]interface{}

	// Read the file first
	dat, err := ioutil.ReadFile(file)
	if err != nil {
		log.Println("error:", err)
		return
	}

	if err := hjson.Unmarshal(dat, &config); err != nil {
		panic(err)
	}

	if c.current == nil {
		c.current = new(map[string]interface{})
	}

	// Keep the freshly read file's values, fill the gaps from the
	// current runtime config.
	merged := make(map[string]interface{}, len(config))
	for k, v := range config {
		merged[k] = v
	}

	if err := mergo.Merge(&merged, *c.current); err != nil {
		panic(err)
	}

	c.current = &merged
	c.rules = decodeRules(merged)

	// Reload signal if anyone is listening...
	go func() {
		c.Reload <- true
	}()
}

func decodeRules(merged map[string]interface{}) Rules {
	rules := DefaultRules()
	section, exists := merged["rules"]
	if !exists {
		return rules
	}

	// Round trip through json so hjson's loose map decodes
	// into the typed struct.
	encoded, err := json.Marshal(section)
	if err != nil {
		log.Println("error:", err)
		return rules
	}
	if err := json.Unmarshal(encoded, &rules); err != nil {
		log.Println("error:", err)
	}
	return rules
}

func (c *Config) WatchFile(file string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Write == fsnotify.Write {
					log.Println("modified file:", event.Name)
					c.Merge(event.Name)
				}
			case err := <-watcher.Errors:
				log.Println("error:", err)
			}
		}
	}()

	err = watcher.Add(file)
	if err != nil {
		log.Println("error:", err)
	}
}
