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
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
	"sync"
)

//go:embed scheme-registry
var embeddedRegistryData []byte

var defaultRegistry = sync.OnceValues(Load)

// Load parses the embedded scheme registry.
//
// Every call parses the whole file again. Most callers want Default, which
// does it once per process.
func Load() (*Registry, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, errors.New("embedded scheme-registry file is empty or not found")
	}
	return ParseRegistry(bytes.NewReader(embeddedRegistryData))
}

// Default returns the registry built from the embedded scheme-registry
// file. It is parsed on first use and shared afterwards; callers must not
// modify it.
//
// Default panics if the embedded file cannot be parsed, which can only
// happen if the module was built from a corrupted source tree.
func Default() *Registry {
	reg, err := defaultRegistry()
	if err != nil {
		panic("schemes: " + err.Error())
	}
	return reg
}
