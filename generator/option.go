package generator

// Option customises a Generator
type Option func(g *Generator)

// WithSource sets the random source, typically a seeded or scripted one in tests.
func WithSource(source Source) Option {
	return func(g *Generator) {
		if source != nil {
			g.source = source
		}
	}
}
