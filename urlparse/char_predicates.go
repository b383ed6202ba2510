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

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSchemeChar checks if a rune may appear in a scheme name.
// RFC 1738, Section 2.1: lower case letters "a"--"z", digits, and the
// characters plus ("+"), period ("."), and hyphen ("-"). Upper case letters
// are accepted too since scheme names are case-insensitive.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isSchemeName checks that s is a non-empty run of scheme characters.
func isSchemeName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isSchemeChar(r) {
			return false
		}
	}
	return true
}
