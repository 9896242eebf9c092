package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'css.grammar'
func tracer() tracing.Trace {
	return tracing.Select("css.grammar")
}
