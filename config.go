package linear

import (
	"encoding/json"
	"os"

	"github.com/ailidani/linear/log"
	"github.com/pkg/errors"
)

// default values
const (
	BATCH   = 2
	PROCESS = 3
	PREFIX  = "Processed: "
)

// Config drives the task processing demonstrations
type Config struct {
	Tasks      []string `json:"tasks"`   // tasks arriving in the processing queue
	Items      []string `json:"items"`   // items loaded into the list for the data flow
	Batch      int      `json:"batch"`   // tasks processed before the undo
	Process    int      `json:"process"` // queue items moved onto the stack
	Prefix     string   `json:"prefix"`
	ConfigFile string   `json:"-"`
}

func MakeDefaultConfig() *Config {
	config := new(Config)
	config.Tasks = []string{"Email Report", "Update Database", "Backup Files", "Send Notifications"}
	config.Items = []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}
	config.Batch = BATCH
	config.Process = PROCESS
	config.Prefix = PREFIX
	config.ConfigFile = "config.json"
	return config
}

// String is implemented to print the config
func (c *Config) String() string {
	config, err := json.Marshal(c)
	if err != nil {
		log.Error(err)
	}
	return string(config)
}

func (c *Config) Load() error {
	file, err := os.Open(c.ConfigFile)
	if err != nil {
		return errors.Wrapf(err, "open config %s", c.ConfigFile)
	}
	defer file.Close()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(c); err != nil {
		return errors.Wrapf(err, "decode config %s", c.ConfigFile)
	}
	return nil
}

func (c *Config) Save() error {
	file, err := os.Create(c.ConfigFile)
	if err != nil {
		return errors.Wrapf(err, "create config %s", c.ConfigFile)
	}
	defer file.Close()
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}
