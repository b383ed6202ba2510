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
	"strings"

	"github.com/jplu/locus/schemes"
)

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
)

// run is the main entry point of the parser. It decomposes s in a single
// left-to-right pass and returns the resulting URL.
func run(s, defaultScheme string, registry *schemes.Registry, flags Flags) (URL, error) {
	if s == "" {
		return URL{}, &kindError{kind: ErrEmptyInput, message: "Empty URL"}
	}
	// A default scheme holding ':' or '/' could not be told apart from the
	// rest of the URL once written back by String.
	if strings.ContainsAny(defaultScheme, ":/") {
		return URL{}, &kindError{kind: ErrMalformedUserinfo, message: "Invalid default scheme", details: defaultScheme}
	}

	p := &urlParser{
		input:         newParserInput(s),
		registry:      registry,
		defaultScheme: defaultScheme,
	}
	if err := p.parseSchemeStart(); err != nil {
		return URL{}, err
	}

	if flags&StrictScheme != 0 && p.result.hasScheme && !isSchemeName(p.result.scheme) {
		return URL{}, &kindError{kind: ErrMalformedScheme, message: "Invalid scheme", details: p.result.scheme}
	}
	if flags&ValidateHost != 0 {
		if err := validateHost(p.result.host); err != nil {
			return URL{}, err
		}
	}
	return p.result, nil
}

// urlParser holds the state for a single parsing operation.
type urlParser struct {
	input         *parserInput
	registry      *schemes.Registry
	defaultScheme string
	result        URL
}

// parseSchemeStart is the initial state of the parser.
func (p *urlParser) parseSchemeStart() error {
	if p.input.hasPrefix("//") {
		// A network-path reference like "//example.com/path" has an
		// authority but no scheme.
		p.input.skip(authorityPrefixLength)
		p.useDefaultScheme()
		return p.parseAuthorityAndPath()
	}
	return p.parseScheme()
}

// parseScheme looks for a "scheme://" prefix. The token up to the first ":"
// is a scheme only when "//" follows the colon; otherwise the whole leading
// token is an authority, which covers "host:port" and "user:pass@host".
// The scheme token itself is taken as written.
func (p *urlParser) parseScheme() error {
	for {
		r, ok := p.input.peek()
		if !ok || r == '/' {
			break
		}
		p.input.next()
		if r != ':' {
			continue
		}
		if !p.input.hasPrefix("//") {
			break
		}

		scheme := p.input.consumed()
		scheme = scheme[:len(scheme)-1]
		if scheme == "" {
			return &kindError{kind: ErrMalformedUserinfo, message: "Empty scheme"}
		}
		p.result.scheme, p.result.hasScheme = scheme, true
		p.input.skip(authorityPrefixLength)
		return p.parseAuthorityAndPath()
	}

	// No scheme found, so the input starts with an authority.
	p.input.rewind()
	p.useDefaultScheme()
	return p.parseAuthorityAndPath()
}

// useDefaultScheme stands the caller's default scheme, if any, in for a
// missing one.
func (p *urlParser) useDefaultScheme() {
	if p.defaultScheme != "" {
		p.result.scheme, p.result.hasScheme = p.defaultScheme, true
	}
}

func (p *urlParser) parseAuthorityAndPath() error {
	if err := p.parseAuthority(); err != nil {
		return err
	}
	p.parsePath()
	return nil
}

// parsePath takes the rest of the input verbatim. It is either empty or
// starts with the "/" that ended the authority.
func (p *urlParser) parsePath() {
	path := p.input.asStr()
	if path == "" {
		path = "/"
	}
	p.result.path = path
}
