package linear

import (
	"flag"
	"os"

	"github.com/ailidani/linear/log"
	"github.com/pkg/errors"
)

var configFile = flag.String("config", "config.json", "Configuration file for the demonstrations. Defaults to config.json.")

// Init parses flags, sets up logging and loads the configuration.
// A missing configuration file falls back to the defaults.
func Init() *Config {
	flag.Parse()
	log.Setup()
	config := MakeDefaultConfig()
	config.ConfigFile = *configFile
	if err := config.Load(); err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatal(err)
		}
		log.Warningf("%v, using defaults", err)
	}
	return config
}
