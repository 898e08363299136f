package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers every configuration flag on fs and returns the
// configuration layer they write into. The returned value is only populated
// after fs has been parsed.
//
// Flags:
//
//	-c/--config            settings file (appsettings.json layout)
//	--env-file             .env file to load before reading the environment
//	-n/--namespace         generated C# namespace
//	-m/--module            module to generate, repeatable or comma separated
//	--global-module        module generated first, filtered to AppSettings and DomainService
//	--options              YAML/JSON file with per-module filter options
//	-o/--output            output file, "-" for stdout
//	--concurrency          number of modules fetched in parallel
//	--file                 JSON file read by the file source
//	--consul-protocol      http or https
//	--consul-address       consul agent host or URL
//	--consul-port          consul HTTP API port
//	--consul-token         ACL token
//	--consul-datacenter    datacenter to query
//	--request-timeout      per-request timeout (e.g. "5s")
//	--retry-count          retries after transport errors and 5xx responses
//	--log-level            trace, debug, info, warn or error
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.SettingsFilePath, "config", "c", "", "settings file path (appsettings.json layout)")
	fs.StringVar(&cfg.DotEnvFilePath, "env-file", "", ".env file to load before reading the environment")

	fs.StringVarP(&cfg.Generator.Namespace, "namespace", "n", "", "namespace of the generated code")
	fs.StringSliceVarP(&cfg.Generator.Modules, "module", "m", nil, "module to generate (repeatable or comma separated)")
	fs.StringVar(&cfg.Generator.GlobalModule, "global-module", "", "module generated first and filtered to AppSettings and DomainService entries")
	fs.StringVar(&cfg.Generator.OptionsFilePath, "options", "", "YAML or JSON file with per-module filter options")
	fs.StringVarP(&cfg.Generator.OutputPath, "output", "o", "", `output file, "-" for stdout`)
	fs.IntVar(&cfg.Generator.Concurrency, "concurrency", 0, "number of modules fetched in parallel")

	fs.StringVar(&cfg.Source.FilePath, "file", "", "JSON file read by the file source")

	fs.StringVar(&cfg.Consul.Protocol, "consul-protocol", "", "consul protocol (http or https)")
	fs.StringVar(&cfg.Consul.Address, "consul-address", "", "consul agent host or URL")
	fs.IntVar(&cfg.Consul.Port, "consul-port", 0, "consul HTTP API port")
	fs.StringVar(&cfg.Consul.Token, "consul-token", "", "consul ACL token")
	fs.StringVar(&cfg.Consul.Datacenter, "consul-datacenter", "", "consul datacenter")
	fs.DurationVar(&cfg.Consul.RequestTimeout, "request-timeout", 0, "consul request timeout (e.g. 5s)")
	fs.IntVar(&cfg.Consul.RetryCount, "retry-count", 0, "retries after transport errors and 5xx responses")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "log level (trace, debug, info, warn, error)")

	return cfg
}
