package catalog

// builtinSchemas are the component schemas bundled with the catalog. They
// cover the schemes the toolkit ships delegate components for.
var builtinSchemas = []ComponentSchema{
	{
		Scheme:      "timer",
		ImplType:    "github.com/jkorab/camel/runtime.GenericComponent",
		Description: "Generate events at a fixed interval",
		Syntax:      "timer:timerName",
		Properties: []PropertySchema{
			{Name: "timerName", Kind: KindPath, Required: true, Description: "The name of the timer"},
			{Name: "delay", Kind: KindParameter, Default: "1000", Description: "Delay in millis"},
			{Name: "period", Kind: KindParameter, Default: "1000", Description: "Period between events in millis"},
			{Name: "repeatCount", Kind: KindParameter, Description: "Number of events to fire before stopping"},
			{Name: "fixedRate", Kind: KindParameter, Default: "false", Description: "Whether to fire at a fixed rate"},
		},
	},
	{
		Scheme:      "log",
		ImplType:    "github.com/jkorab/camel/runtime.GenericComponent",
		Description: "Log messages to the configured logger",
		Syntax:      "log:loggerName",
		Properties: []PropertySchema{
			{Name: "loggerName", Kind: KindPath, Required: true, Description: "Name of the logger to use"},
			{Name: "level", Kind: KindParameter, Default: "INFO", Description: "Logging level"},
			{Name: "showBody", Kind: KindParameter, Default: "true", Description: "Whether to show the message body"},
			{Name: "multiline", Kind: KindParameter, Default: "false", Description: "Whether to print each detail on a new line"},
		},
	},
	{
		Scheme:      "file",
		ImplType:    "github.com/jkorab/camel/runtime.GenericComponent",
		Description: "Read and write files in a directory",
		Syntax:      "file:directoryName",
		Properties: []PropertySchema{
			{Name: "directoryName", Kind: KindPath, Required: true, Description: "The starting directory"},
			{Name: "recursive", Kind: KindParameter, Default: "false", Description: "Whether to process directories recursively"},
			{Name: "delete", Kind: KindParameter, Default: "false", Description: "Whether to delete files after processing"},
			{Name: "fileName", Kind: KindParameter, Description: "Expression to set the file name"},
		},
	},
	{
		Scheme:      "http",
		ImplType:    "github.com/jkorab/camel/runtime.GenericComponent",
		Description: "Call external HTTP services",
		Syntax:      "http:httpUri",
		Properties: []PropertySchema{
			{Name: "httpUri", Kind: KindPath, Required: true, Description: "The url of the HTTP endpoint to call"},
			{Name: "username", Kind: KindParameter, Description: "Username for authentication"},
			{Name: "password", Kind: KindParameter, Secret: true, Description: "Password for authentication"},
			{Name: "connectTimeout", Kind: KindParameter, Default: "30000", Description: "Connection timeout in millis"},
			{Name: "bridgeEndpoint", Kind: KindParameter, Default: "false", Description: "Whether to act as a transparent proxy"},
		},
	},
}
