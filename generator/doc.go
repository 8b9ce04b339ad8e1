// Package generator produces randomized placeholder values (team names,
// private IP addresses and hostnames) used to add variety to load test
// scenario traffic.
//
// Values are for test-data variety only: they are neither unique nor
// suitable for any cryptographic purpose.
//
//	g := generator.New()
//	team := g.TeamName()  // team_x8f1kq
//	ip := g.IP()          // 192.168.17.203
//	host := g.Hostname()  // host_3nd0a.com
package generator
