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
	"strconv"
	"strings"
)

const maxPort = 65535

// authorityParts is an authority split into its components. The has*
// fields tell an absent component from an empty one ("host" vs "host:").
type authorityParts struct {
	userinfo    string
	hasUserinfo bool
	host        string
	port        string
	hasPort     bool
}

// splitAuthority is the single, stateless utility function that breaks an
// authority string into its userinfo, host, and port components.
//
// The userinfo ends at the last "@", so a user name may itself contain "@".
// The port starts at the first ":" after the userinfo; IPv6 literals are
// not supported.
func splitAuthority(authority string) authorityParts {
	var parts authorityParts

	hostport := authority
	if endUserinfo := strings.LastIndexByte(authority, '@'); endUserinfo != -1 {
		parts.userinfo, parts.hasUserinfo = authority[:endUserinfo], true
		hostport = authority[endUserinfo+1:]
	}

	parts.host, parts.port, parts.hasPort = strings.Cut(hostport, ":")
	return parts
}

// parseUserinfo handles the "user[:password]" part of the authority.
func (p *urlParser) parseUserinfo(userinfo string) error {
	user, password, hasPassword := strings.Cut(userinfo, ":")
	if user == "" {
		return &kindError{kind: ErrMalformedUserinfo, message: "Empty user name in userinfo", details: userinfo}
	}
	p.result.user, p.result.hasUser = user, true
	p.result.password, p.result.hasPassword = password, hasPassword
	return nil
}

// parseHost handles the host part of the authority. An empty host falls
// back to the scheme's default host, but only for a bare authority such as
// the one of "file:///etc/hosts".
func (p *urlParser) parseHost(parts authorityParts) error {
	if parts.host != "" {
		p.result.host = parts.host
		return nil
	}
	if !parts.hasUserinfo && !parts.hasPort {
		if host, ok := p.registry.HostOptional(p.result.scheme); ok {
			p.result.host = host
			return nil
		}
	}
	if p.result.hasScheme {
		return &kindError{kind: ErrMissingHost, message: "Missing host for scheme", details: p.result.scheme}
	}
	return &kindError{kind: ErrMissingHost, message: "Missing host"}
}

// parsePort handles the port part of the authority. Without an explicit
// port the scheme's well-known port is used, if it has one.
func (p *urlParser) parsePort(port string, hasPort bool) error {
	if !hasPort {
		if n, ok := p.registry.DefaultPort(p.result.scheme); ok {
			p.result.port, p.result.hasPort = n, true
		}
		return nil
	}

	if port == "" {
		return &kindError{kind: ErrMalformedPort, message: "Empty port"}
	}
	for _, r := range port {
		if !isASCIIDigit(r) {
			return &kindError{kind: ErrMalformedPort, message: "Invalid port character", char: r}
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > maxPort {
		return &kindError{kind: ErrMalformedPort, message: "Port out of range", details: port}
	}
	p.result.port, p.result.hasPort = n, true
	return nil
}

// parseAuthority consumes the authority, which runs up to the next "/" or
// the end of the input.
func (p *urlParser) parseAuthority() error {
	authorityStr := p.input.asStr()
	end := strings.IndexByte(authorityStr, '/')
	if end == -1 {
		end = len(authorityStr)
	}

	parts := splitAuthority(authorityStr[:end])

	if parts.hasUserinfo {
		if err := p.parseUserinfo(parts.userinfo); err != nil {
			return err
		}
	}
	if err := p.parseHost(parts); err != nil {
		return err
	}
	if err := p.parsePort(parts.port, parts.hasPort); err != nil {
		return err
	}

	p.input.skip(end)
	return nil
}
