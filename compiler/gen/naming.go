package gen

import (
	"go/token"
	"strings"
	"sync"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules      = ruleset()
	acronymsMu sync.RWMutex
	acronyms   = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common initialisms from golint.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HCL", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC",
		"MB", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID",
		"VM", "XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym registers an additional initialism kept upper case by Pascal.
func AddAcronym(word string) {
	acronymsMu.Lock()
	defer acronymsMu.Unlock()
	acronyms[strings.ToUpper(word)] = struct{}{}
}

func isAcronym(w string) bool {
	acronymsMu.RLock()
	defer acronymsMu.RUnlock()
	_, ok := acronyms[strings.ToUpper(w)]
	return ok
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// Pascal converts a spec name to an exported Go identifier.
//
//	user_info => UserInfo
//	full-admin => FullAdmin
//	user_id   => UserID
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	// Casers are stateful and not safe for concurrent use.
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		if isAcronym(w) {
			words[i] = strings.ToUpper(w)
		} else {
			words[i] = title.String(w)
		}
	}
	return strings.Join(words, "")
}

// Camel converts a spec name to an unexported Go identifier.
//
//	user_info => userInfo
//	http_code => httpCode
func Camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return ""
	}
	first := words[0]
	if isAcronym(first) {
		first = strings.ToLower(first)
	} else {
		first = strings.ToLower(first[:1]) + first[1:]
	}
	return first + Pascal(strings.Join(words[1:], "_"))
}

// Snake splits a Go identifier into lower case words joined by
// underscores. Acronyms stay one word.
//
//	UserInfo => user_info
//	HTTPCode => http_code
//	UserIDs  => user_ids
func Snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// An upper case letter inside s opens a word after a lower case
		// letter, or ends an acronym when a lower case letter follows.
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Receiver returns the receiver name of a type.
//
//	User       => u
//	UserQuery  => uq
//	HTTPClient => hc
func Receiver(s string) string {
	s = strings.Trim(s, "[]*&0123456789")
	if s == "" {
		return "v"
	}
	var b strings.Builder
	for _, w := range strings.Split(Snake(s), "_") {
		if w != "" {
			b.WriteByte(w[0])
		}
	}
	name := strings.ToLower(b.String())
	if token.IsKeyword(name) {
		name = "_" + name
	}
	return name
}

// Plural returns the plural form of a name. Names whose plural is the
// name itself get a "Values" suffix.
//
//	Code     => Codes
//	Category => Categories
//	Status   => Statuses
//	Series   => SeriesValues
func Plural(name string) string {
	// Inflection rules match lower case suffixes. The result keeps the
	// casing of the prefix it shares with name.
	lower := strings.ToLower(name)
	p := rules.Pluralize(lower)
	if p == lower {
		return name + "Values"
	}
	k := 0
	for k < len(name) && k < len(lower) && k < len(p) && lower[k] == p[k] {
		k++
	}
	return name[:k] + p[k:]
}

// PackageName returns the Go package name of a slash separated module name,
// derived from its last element.
//
//	include/base => base
//	userService  => userservice
func PackageName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	pkg := b.String()
	switch {
	case pkg == "":
		return "model"
	case unicode.IsDigit(rune(pkg[0])), token.IsKeyword(pkg):
		return "pkg" + pkg
	}
	return pkg
}
