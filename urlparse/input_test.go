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

import "testing"

func TestParserInput_NextAndPeek(t *testing.T) {
	p := newParserInput("aé/")

	if r, ok := p.peek(); !ok || r != 'a' {
		t.Fatalf("peek() = (%q, %v), want ('a', true)", r, ok)
	}
	if p.position() != 0 {
		t.Errorf("peek() moved the position to %d", p.position())
	}

	want := []rune{'a', 'é', '/'}
	for i, w := range want {
		r, ok := p.next()
		if !ok || r != w {
			t.Fatalf("next() #%d = (%q, %v), want (%q, true)", i, r, ok, w)
		}
	}
	if p.position() != len("aé/") {
		t.Errorf("position() = %d, want %d", p.position(), len("aé/"))
	}

	if _, ok := p.next(); ok {
		t.Error("next() at end of input should report false")
	}
	if _, ok := p.peek(); ok {
		t.Error("peek() at end of input should report false")
	}
}

func TestParserInput_Positions(t *testing.T) {
	p := newParserInput("http://host/path")

	for range len("http:") {
		p.next()
	}
	if got := p.consumed(); got != "http:" {
		t.Errorf("consumed() = %q, want %q", got, "http:")
	}
	if !p.hasPrefix("//") {
		t.Error("hasPrefix(\"//\") = false, want true")
	}

	p.skip(authorityPrefixLength)
	if got := p.asStr(); got != "host/path" {
		t.Errorf("asStr() after skip = %q, want %q", got, "host/path")
	}

	p.skip(100)
	if got := p.asStr(); got != "" {
		t.Errorf("asStr() after skipping past the end = %q, want empty", got)
	}

	p.rewind()
	if p.position() != 0 || p.asStr() != "http://host/path" {
		t.Errorf("rewind() left position %d and rest %q", p.position(), p.asStr())
	}
}
