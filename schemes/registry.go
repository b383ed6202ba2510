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

// Package schemes holds the table of URL schemes known to the parser: the
// well-known port each scheme defaults to and whether a URL of that scheme
// may leave its host out.
//
// The table is a record-jar file embedded at compile time, in the same
// spirit as the IANA registries: one record per scheme, records separated
// by "%%". Callers that need a different set of schemes can build their own
// Registry with ParseRegistry.
package schemes

import "strings"

// Registry holds the parsed scheme records, keyed by lowercase scheme name.
type Registry struct {
	Records  map[string]Record
	FileDate string
}

// Record represents a single entry of the scheme registry.
type Record struct {
	Scheme       string   `json:"scheme"`
	Port         int      `json:"port,omitempty"`
	HasPort      bool     `json:"hasPort"`
	HostOptional bool     `json:"hostOptional,omitempty"`
	DefaultHost  string   `json:"defaultHost,omitempty"`
	Description  []string `json:"description,omitempty"`
	Reference    []string `json:"reference,omitempty"`
	Comments     []string `json:"comments,omitempty"`
}

// Lookup returns the record registered for scheme. Scheme names are
// compared case-insensitively (RFC 1738, Section 2.1).
func (r *Registry) Lookup(scheme string) (Record, bool) {
	if r == nil || scheme == "" {
		return Record{}, false
	}
	rec, ok := r.Records[strings.ToLower(scheme)]
	return rec, ok
}

// DefaultPort returns the well-known port of scheme, if it has one.
func (r *Registry) DefaultPort(scheme string) (int, bool) {
	rec, ok := r.Lookup(scheme)
	if !ok || !rec.HasPort {
		return 0, false
	}
	return rec.Port, true
}

// HostOptional reports whether a URL of the given scheme may omit its host,
// and if so which host stands in for it.
func (r *Registry) HostOptional(scheme string) (string, bool) {
	rec, ok := r.Lookup(scheme)
	if !ok || !rec.HostOptional {
		return "", false
	}
	return rec.DefaultHost, true
}
