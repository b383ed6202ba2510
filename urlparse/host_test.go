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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package urlparse

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateBidiLabel(t *testing.T) {
	ltr := "hello"
	rtl := "\u05D0\u05D1\u05D2" // Hebrew Alef, Bet, Gimel

	testCases := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "Empty", label: "", wantErr: false},
		{name: "Valid LTR", label: ltr, wantErr: false},
		{name: "Valid RTL", label: rtl, wantErr: false},
		{name: "Digits only", label: "123", wantErr: false},
		{name: "Invalid Mixed", label: ltr + rtl, wantErr: true},
		{name: "Invalid RTL Start", label: "1" + rtl, wantErr: true},
		{name: "Invalid RTL End", label: rtl + "-", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBidiLabel(tc.label)
			if (err != nil) != tc.wantErr {
				t.Fatalf("validateBidiLabel(%q) error = %v, wantErr %v", tc.label, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidHost) {
				t.Errorf("validateBidiLabel(%q) error = %v, want kind %v", tc.label, err, ErrInvalidHost)
			}
		})
	}
}

func TestValidateBidiHost(t *testing.T) {
	// Labels are checked one by one, so RTL and LTR labels may sit side by side.
	if err := validateBidiHost("\u05D0\u05D1.example"); err != nil {
		t.Errorf("validateBidiHost() unexpected error: %v", err)
	}

	err := validateBidiHost("ab\u05D0.example")
	if err == nil {
		t.Fatal("validateBidiHost() should reject a mixed label")
	}
	if !strings.Contains(err.Error(), "in host 'ab\u05D0.example'") {
		t.Errorf("validateBidiHost() error %q should name the host", err.Error())
	}
}

func TestValidateHost(t *testing.T) {
	testCases := []struct {
		name    string
		host    string
		wantErr bool
	}{
		{name: "ASCII", host: "testurl.com", wantErr: false},
		{name: "Upper case", host: "TestURL.com", wantErr: false},
		{name: "localhost", host: "localhost", wantErr: false},
		{name: "IPv4", host: "127.0.0.1", wantErr: false},
		{name: "IDN", host: "bücher.example", wantErr: false},
		{name: "Punycode", host: "xn--bcher-kva.example", wantErr: false},
		{name: "Space", host: "test url.com", wantErr: true},
		{name: "Angle bracket", host: "<testurl>.com", wantErr: true},
		{name: "Not NFC", host: "bu\u0308cher.example", wantErr: true},
		{name: "Bidi", host: "a\u05D0.example", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateHost(tc.host)
			if (err != nil) != tc.wantErr {
				t.Fatalf("validateHost(%q) error = %v, wantErr %v", tc.host, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidHost) {
				t.Errorf("validateHost(%q) error = %v, want kind %v", tc.host, err, ErrInvalidHost)
			}
		})
	}
}
