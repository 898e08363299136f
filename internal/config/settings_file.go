package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SettingsFile mirrors the appsettings.json layout understood by configgen:
//
//	{
//	  "Configuration": { "NamespaceName": "Acme.Settings", "ModuleName": "Orders" },
//	  "Consul": { "Protocol": "http", "IP": "10.0.0.5", "Port": "8500", "Module": "Orders,Billing" }
//	}
//
// Everything outside NamespaceName, ModuleName and the Consul connection is
// optional.
type SettingsFile struct {
	Configuration struct {
		NamespaceName string `json:"NamespaceName"`
		ModuleName    string `json:"ModuleName"`
		GlobalModule  string `json:"GlobalModule"`
		OptionsFile   string `json:"OptionsFile"`
		Output        string `json:"Output"`
		Concurrency   int    `json:"Concurrency"`
		Source        string `json:"Source"`
		File          string `json:"File"`
	} `json:"Configuration"`

	Consul struct {
		Protocol       string      `json:"Protocol"`
		IP             string      `json:"IP"`
		Port           FlexibleInt `json:"Port"`
		Module         string      `json:"Module"`
		Token          string      `json:"Token"`
		Datacenter     string      `json:"Datacenter"`
		RequestTimeout Duration    `json:"RequestTimeout"`
		RetryCount     int         `json:"RetryCount"`
	} `json:"Consul"`

	Logging struct {
		Level string `json:"Level"`
	} `json:"Logging"`
}

func parseSettingsFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a settings file: %w", err)
	}
	defer f.Close()

	var settings SettingsFile
	if err := json.NewDecoder(f).Decode(&settings); err != nil {
		return nil, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	modules := splitModules(settings.Consul.Module)
	if len(modules) == 0 && settings.Configuration.ModuleName != "" {
		modules = []string{settings.Configuration.ModuleName}
	}

	cfg := &StructuredConfig{
		Generator: Generator{
			Namespace:       settings.Configuration.NamespaceName,
			Modules:         modules,
			GlobalModule:    settings.Configuration.GlobalModule,
			OptionsFilePath: settings.Configuration.OptionsFile,
			OutputPath:      settings.Configuration.Output,
			Concurrency:     settings.Configuration.Concurrency,
		},
		Source: Source{
			Mode:     settings.Configuration.Source,
			FilePath: settings.Configuration.File,
		},
		Consul: Consul{
			Protocol:       settings.Consul.Protocol,
			Address:        settings.Consul.IP,
			Port:           int(settings.Consul.Port),
			Token:          settings.Consul.Token,
			Datacenter:     settings.Consul.Datacenter,
			RequestTimeout: time.Duration(settings.Consul.RequestTimeout),
			RetryCount:     settings.Consul.RetryCount,
		},
		Log: Log{
			Level: settings.Logging.Level,
		},
	}

	return cfg, nil
}

// splitModules splits a comma separated module list, dropping blanks.
func splitModules(raw string) []string {
	var modules []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modules = append(modules, m)
		}
	}
	return modules
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// FlexibleInt accepts both 8500 and "8500" in JSON.
type FlexibleInt int

func (i *FlexibleInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(b), err)
	}
	*i = FlexibleInt(n)
	return nil
}
