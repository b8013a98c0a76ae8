package uritemplate

import (
	"fmt"
	"strings"
)

// Authority represents the authority part of a template (user@host:port)
//
// Authority values are immutable - the With methods return a new Authority
type Authority struct {
	userInfo string
	host     string
	port     int
	hasPort  bool
}

// NewAuthority creates a new Authority with the specified host
func NewAuthority(host string) *Authority {
	return &Authority{
		host: host,
	}
}

// WithUserInfo returns a new Authority with the user info set
func (a *Authority) WithUserInfo(userInfo string) *Authority {
	result := a.clone()
	result.userInfo = userInfo
	return result
}

// WithPort returns a new Authority with the port set
func (a *Authority) WithPort(port int) *Authority {
	result := a.clone()
	result.port = port
	result.hasPort = true
	return result
}

// UserInfo returns the user info part (empty if not set)
func (a *Authority) UserInfo() string {
	return a.userInfo
}

// Host returns the host part
func (a *Authority) Host() string {
	return a.host
}

// Port returns the port part (and whether a port was set)
func (a *Authority) Port() (int, bool) {
	return a.port, a.hasPort
}

// String returns the authority in its user@host:port form (with user and
// port each optional)
func (a *Authority) String() string {
	var b strings.Builder
	if a.userInfo != "" {
		b.WriteString(a.userInfo)
		b.WriteString("@")
	}
	b.WriteString(a.host)
	if a.hasPort {
		b.WriteString(fmt.Sprintf(":%d", a.port))
	}
	return b.String()
}

func (a *Authority) hostPort() string {
	if a.hasPort {
		return fmt.Sprintf("%s:%d", a.host, a.port)
	}
	return a.host
}

func (a *Authority) clone() *Authority {
	return &Authority{
		userInfo: a.userInfo,
		host:     a.host,
		port:     a.port,
		hasPort:  a.hasPort,
	}
}
