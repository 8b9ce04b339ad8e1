package generator

import (
	"math"
	"strconv"

	"github.com/viant/fixture/model/types"
)

const (
	TeamPrefix     = "team_"
	HostPrefix     = "host_"
	HostSuffix     = ".com"
	NetworkPrefix  = "192.168."
	MaxOctet       = 254
	suffixOffset   = 7
	suffixRadix    = 36
	suffixAttempts = 8
)

// Exported function names as looked up by a scenario engine.
const (
	TeamNameFunc = "generateTeamName"
	IPFunc       = "generateIP"
	HostnameFunc = "generateHostname"
)

// Generator produces fixture values from its Source. It is safe for
// concurrent use when the Source is.
type Generator struct {
	source Source
}

// TeamName returns "team_" followed by a random base-36 fragment.
func (g *Generator) TeamName() string {
	return TeamPrefix + g.suffix()
}

// IP returns 192.168.a.b with both octets drawn from [0, 254].
func (g *Generator) IP() string {
	a := g.source.Number(0, MaxOctet)
	b := g.source.Number(0, MaxOctet)
	return NetworkPrefix + strconv.Itoa(a) + "." + strconv.Itoa(b)
}

// Hostname returns "host_" followed by a random base-36 fragment and ".com".
func (g *Generator) Hostname() string {
	return HostPrefix + g.suffix() + HostSuffix
}

// suffix renders a random fraction in base 36 and drops its first characters
// ("0." and the leading digits), so the length varies from call to call.
func (g *Generator) suffix() string {
	for i := 0; i < suffixAttempts; i++ {
		text := formatRadix(g.source.Float64(), suffixRadix)
		if len(text) > suffixOffset {
			return text[suffixOffset:]
		}
	}
	// short fractions such as 0.5 ("0.i") leave nothing after the offset
	return strconv.FormatInt(int64(g.source.Number(0, math.MaxInt32)), suffixRadix)
}

// Exports binds the generator methods to their exported function names.
func (g *Generator) Exports() types.Exports {
	return types.Exports{
		TeamNameFunc: g.TeamName,
		IPFunc:       g.IP,
		HostnameFunc: g.Hostname,
	}
}

// New creates a generator
func New(options ...Option) *Generator {
	ret := &Generator{}
	for _, opt := range options {
		opt(ret)
	}
	if ret.source == nil {
		ret.source = NewSource()
	}
	return ret
}

var defaultGenerator = New()

// TeamName returns a team name from the default generator.
func TeamName() string { return defaultGenerator.TeamName() }

// IP returns an IP address from the default generator.
func IP() string { return defaultGenerator.IP() }

// Hostname returns a hostname from the default generator.
func Hostname() string { return defaultGenerator.Hostname() }

// Exports returns the default generator's exports.
func Exports() types.Exports { return defaultGenerator.Exports() }
