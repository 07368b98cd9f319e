// Package icons names the FontAwesome 4 code points.
//
// Each constant is a one-rune string suitable for faicon.Generator and the
// control adapters:
//
//	bm, err := gen.CreateImage(icons.Home)
//
// Names follow the FontAwesome CSS classes without the "fa-" prefix.
package icons

import (
	"sort"
	"strings"
	"sync"
)

// Lookup returns the icon for a FontAwesome name such as "home" or
// "fa-home". Common aliases like "gear" are accepted.
func Lookup(name string) (string, bool) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "fa-")
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	icon, ok := byName[name]
	return icon, ok
}

// Names returns the canonical icon names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	reverseOnce sync.Once
	byIcon      map[string]string
)

// NameOf returns the canonical name of icon.
func NameOf(icon string) (string, bool) {
	reverseOnce.Do(func() {
		byIcon = make(map[string]string, len(byName))
		for name, ic := range byName {
			byIcon[ic] = name
		}
	})
	name, ok := byIcon[icon]
	return name, ok
}
