// Package fixture provides randomized placeholder values (team names, IP
// addresses, hostnames) for load test scenarios.
//
// A scenario engine looks fixture functions up by their exported name and
// calls them with no arguments:
//
//	srv, _ := fixture.New()
//	exports := srv.Exports()
//	team := exports.Lookup("generateTeamName")()
//
// The same functions are available as methods of the "fixture" action
// service, and scenario files can bind them to template variables:
//
//	scenario, _ := srv.Scenarios().Load(ctx, "scenario.yaml")
//	binding, _ := srv.Scenarios().Bind(ctx, scenario)
package fixture
