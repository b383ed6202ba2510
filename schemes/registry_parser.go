/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package schemes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	keyValParts = 2
	maxPort     = 65535
)

// Errors that can occur while reading a scheme registry.
var (
	ErrMissingScheme      = errors.New("a registry record must name a scheme")
	ErrInvalidScheme      = errors.New("a scheme name contains a char not allowed")
	ErrInvalidPort        = errors.New("a port must be a decimal number between 0 and 65535")
	ErrInvalidHostOption  = errors.New("host-optional must be either 'yes' or 'no'")
	ErrMissingDefaultHost = errors.New("a host-optional scheme must declare a default host")
	ErrStrayDefaultHost   = errors.New("a default host is only allowed on host-optional schemes")
	ErrDuplicateScheme    = errors.New("the same scheme is registered more than once")
)

// registryParser holds the state for parsing a registry file.
type registryParser struct {
	registry      *Registry
	currentFields map[string][]string
	lastFieldName string
	// pastHeader is set by the first "%%"; File-Date is a header field only.
	pastHeader bool
}

// processLine handles a single line from the registry file.
func (p *registryParser) processLine(line string) error {
	if line == "%%" {
		if err := addRecordFromFields(p.registry, p.currentFields); err != nil {
			return err
		}
		p.currentFields = make(map[string][]string)
		p.lastFieldName = ""
		p.pastHeader = true
		return nil
	}

	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		if p.lastFieldName != "" && len(p.currentFields[p.lastFieldName]) > 0 {
			lastIdx := len(p.currentFields[p.lastFieldName]) - 1
			p.currentFields[p.lastFieldName][lastIdx] += " " + strings.TrimSpace(line)
		}
		return nil
	}

	fieldName, fieldBody, found := strings.Cut(line, ":")
	if !found {
		return nil
	}
	fieldName, fieldBody = strings.TrimSpace(fieldName), strings.TrimSpace(fieldBody)
	if !p.pastHeader && strings.EqualFold(fieldName, "File-Date") {
		p.registry.FileDate = fieldBody
		return nil
	}

	fieldNameLower := strings.ToLower(fieldName)
	p.currentFields[fieldNameLower] = append(p.currentFields[fieldNameLower], fieldBody)
	p.lastFieldName = fieldNameLower
	return nil
}

// ParseRegistry reads a scheme registry in record-jar format from the given
// reader and returns a populated Registry.
func ParseRegistry(r io.Reader) (*Registry, error) {
	scanner := bufio.NewScanner(r)
	p := &registryParser{
		registry: &Registry{
			Records: make(map[string]Record),
		},
		currentFields: make(map[string][]string),
	}

	for scanner.Scan() {
		if err := p.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := addRecordFromFields(p.registry, p.currentFields); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.registry, nil
}

// addRecordFromFields builds a record from the collected fields, checks it
// and adds it to the registry.
func addRecordFromFields(registry *Registry, fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	record, err := buildRecord(fields)
	if err != nil {
		return err
	}

	key := strings.ToLower(record.Scheme)
	if _, exists := registry.Records[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScheme, record.Scheme)
	}
	registry.Records[key] = record
	return nil
}

// buildRecord converts a map of raw field strings into a Record struct.
func buildRecord(fields map[string][]string) (Record, error) {
	getString := func(key string) string {
		if v, ok := fields[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	rec := Record{
		Scheme:      getString("scheme"),
		DefaultHost: getString("default-host"),
		Description: fields["description"],
		Reference:   fields["reference"],
		Comments:    fields["comments"],
	}

	if rec.Scheme == "" {
		return Record{}, ErrMissingScheme
	}
	if !isSchemeName(rec.Scheme) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidScheme, rec.Scheme)
	}

	if port := getString("port"); port != "" {
		n, err := parsePort(port)
		if err != nil {
			return Record{}, fmt.Errorf("scheme %s: %w", rec.Scheme, err)
		}
		rec.Port, rec.HasPort = n, true
	}

	switch strings.ToLower(getString("host-optional")) {
	case "yes":
		rec.HostOptional = true
	case "", "no":
	default:
		return Record{}, fmt.Errorf("scheme %s: %w", rec.Scheme, ErrInvalidHostOption)
	}

	if rec.HostOptional && rec.DefaultHost == "" {
		return Record{}, fmt.Errorf("scheme %s: %w", rec.Scheme, ErrMissingDefaultHost)
	}
	if !rec.HostOptional && rec.DefaultHost != "" {
		return Record{}, fmt.Errorf("scheme %s: %w", rec.Scheme, ErrStrayDefaultHost)
	}
	return rec, nil
}

// parsePort reads a registry port value.
func parsePort(s string) (int, error) {
	if !isNumeric(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > maxPort {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return n, nil
}
