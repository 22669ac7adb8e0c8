package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/gridpoint-io/nios/pkg/niosclient"
	"github.com/gridpoint-io/nios/pkg/wapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidFieldFormat = errors.New("invalid field format, expected NAME=VALUE")
)

// connectorFromConfig builds a connector from the resolved viper
// configuration, prompting for the password when it was not supplied and
// stdin is a terminal.
func connectorFromConfig() (wapi.Connector, error) {
	config := &wapi.Config{
		Host:               viper.GetString("host"),
		Username:           viper.GetString("username"),
		Password:           viper.GetString("password"),
		WAPIVersion:        viper.GetString("wapi-version"),
		SSLVerify:          viper.GetBool("ssl-verify"),
		HTTPRequestTimeout: viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		config.Logger = stderrLogger{}
		config.LogAPICallsAsInfo = true
	}

	if config.Password == "" && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(os.Stderr, "Password: ")

		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Fprintln(os.Stderr)

		config.Password = string(bytePassword)
	}

	return niosclient.New(config)
}

// stderrLogger prints connector logs to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "debug: %s %v\n", msg, fields)
}

func (stderrLogger) Info(msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "info: %s %v\n", msg, fields)
}

func (stderrLogger) Warn(msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "warn: %s %v\n", msg, fields)
}

func (stderrLogger) Error(msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "error: %s %v\n", msg, fields)
}

// parseFields turns NAME=VALUE arguments into a payload. Values that parse
// as JSON numbers, booleans, objects, or arrays keep that type; everything
// else stays a string.
func parseFields(args []string) (wapi.Payload, error) {
	if len(args) == 0 {
		return nil, nil
	}

	payload := wapi.Payload{}

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, arg)
		}

		payload[name] = parseFieldValue(value)
	}

	return payload, nil
}

func parseFieldValue(value string) interface{} {
	var parsed interface{}

	err := json.Unmarshal([]byte(value), &parsed)
	if err == nil {
		if _, isString := parsed.(string); !isString {
			return parsed
		}
	}

	return value
}

// parseExtAttrs turns NAME=VALUE pairs into extensible-attribute filters.
func parseExtAttrs(pairs []string) (wapi.ExtAttrs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	attrs := wapi.ExtAttrs{}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, pair)
		}

		attrs[name] = wapi.ExtAttr{Value: value}
	}

	return attrs, nil
}

// renderResult writes a parsed WAPI reply to stdout in the configured
// output format.
func renderResult(result interface{}) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	case OutputFormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(result)
	default:
		return renderTable(result)
	}
}

// renderTable renders a reply as a table: one row per object for lists,
// field/value pairs for a single object, and plain text for scalars.
func renderTable(result interface{}) error {
	switch value := result.(type) {
	case []interface{}:
		return renderObjectList(value)
	case map[string]interface{}:
		return renderObjectFields(value)
	default:
		fmt.Printf("%v\n", value)

		return nil
	}
}

func renderObjectList(objects []interface{}) error {
	columns := map[string]bool{}

	for _, object := range objects {
		fields, ok := object.(map[string]interface{})
		if !ok {
			// Mixed or scalar lists fall back to one line per entry.
			for _, entry := range objects {
				fmt.Printf("%v\n", entry)
			}

			return nil
		}

		for name := range fields {
			columns[name] = true
		}
	}

	header := make([]string, 0, len(columns))
	for name := range columns {
		header = append(header, name)
	}

	sort.Strings(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, object := range objects {
		fields, _ := object.(map[string]interface{})

		row := make([]interface{}, 0, len(header))
		for _, name := range header {
			if fieldValue, ok := fields[name]; ok {
				row = append(row, fmt.Sprintf("%v", fieldValue))
			} else {
				row = append(row, "")
			}
		}

		_ = table.Append(row...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderObjectFields(fields map[string]interface{}) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, name := range names {
		_ = table.Append(name, fmt.Sprintf("%v", fields[name]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	converted := make([]interface{}, len(values))
	for i, value := range values {
		converted[i] = value
	}

	return converted
}
