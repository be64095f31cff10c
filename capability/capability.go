// Package capability maps the server protocol version and the session service
// type to the endpoint variant a command must use.
package capability

import (
	"slices"

	"github.com/imtaco/infinity-session/infinity"
)

type Feature int

const (
	// DefaultTarget picks who a command without an explicit participant acts on.
	DefaultTarget Feature = iota
	// AudioMute picks the endpoint that mutes the local participant's audio.
	AudioMute
)

type Selector int

const (
	// DefaultTarget selectors.
	TargetSelf Selector = iota
	TargetParentOrSelf
)

const (
	// AudioMute selectors.
	MuteLegacy Selector = iota
	MuteClient
)

const (
	BreakoutAwareVersion infinity.VersionID = 35
	ClientMuteVersion    infinity.VersionID = 36
)

// Rule selects Selector for Feature from MinVersion on, unless the service type
// is listed in Excluded.
type Rule struct {
	Feature    Feature
	MinVersion infinity.VersionID
	Excluded   []infinity.ServiceType
	Selector   Selector
}

// Table is an ordered rule list; the first matching rule wins and Fallback
// applies when none does.
type Table struct {
	Rules    []Rule
	Fallback map[Feature]Selector
}

// Default is the version matrix of the client REST API v2.
var Default = Table{
	Rules: []Rule{
		{Feature: DefaultTarget, MinVersion: BreakoutAwareVersion, Selector: TargetParentOrSelf},
		{
			Feature:    AudioMute,
			MinVersion: ClientMuteVersion,
			Excluded:   []infinity.ServiceType{infinity.ServiceTypeGateway},
			Selector:   MuteClient,
		},
	},
	Fallback: map[Feature]Selector{
		DefaultTarget: TargetSelf,
		AudioMute:     MuteLegacy,
	},
}

func (t Table) Select(feature Feature, version infinity.VersionID, serviceType infinity.ServiceType) Selector {
	for _, r := range t.Rules {
		if r.Feature != feature || version < r.MinVersion {
			continue
		}
		if slices.Contains(r.Excluded, serviceType) {
			continue
		}
		return r.Selector
	}
	return t.Fallback[feature]
}
