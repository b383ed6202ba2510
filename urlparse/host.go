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

package urlparse

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// validateHost runs the ValidateHost checks on a decomposed host: it must
// be in NFC, pass the bidi rule label by label, and be a valid IDNA lookup
// name.
func validateHost(host string) error {
	if !norm.NFC.IsNormalString(host) {
		return &kindError{kind: ErrInvalidHost, message: "Host is not in Unicode Normalization Form C", details: host}
	}
	if err := validateBidiHost(host); err != nil {
		return err
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return &kindError{kind: ErrInvalidHost, message: "Invalid host", details: host}
	}
	return nil
}

// validateBidiHost checks each dot-separated label of host against the
// RFC 3987, Section 4.2 rules.
func validateBidiHost(host string) error {
	for _, label := range strings.Split(host, ".") {
		if err := validateBidiLabel(label); err != nil {
			var e *kindError
			if errors.As(err, &e) {
				e.details = label + " in host '" + host + "'"
			}
			return err
		}
	}
	return nil
}

// validateBidiLabel applies the two bidi rules to a single host label:
// it must not mix left-to-right and right-to-left characters, and a
// right-to-left label must start and end with a right-to-left character.
func validateBidiLabel(label string) error {
	if label == "" {
		return nil
	}

	runes := []rune(label)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch bidiClass(r) {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		default:
			// Neutral for the purpose of this check.
		}
	}

	if hasLTR && hasRTL {
		return &kindError{kind: ErrInvalidHost, message: "Invalid host label: mixed left-to-right and right-to-left characters"}
	}
	if hasRTL && (!isRTL(runes[0]) || !isRTL(runes[len(runes)-1])) {
		return &kindError{
			kind:    ErrInvalidHost,
			message: "Invalid host label: right-to-left labels must start and end with right-to-left characters",
		}
	}
	return nil
}

func bidiClass(r rune) bidi.Class {
	prop, _ := bidi.LookupRune(r)
	return prop.Class()
}

func isRTL(r rune) bool {
	class := bidiClass(r)
	return class == bidi.R || class == bidi.AL
}
