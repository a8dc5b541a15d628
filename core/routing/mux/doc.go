// Package mux provides a routing.Router that combines multiple routers and
// dispatches each call to the one owning the call's class. It is useful when
// different class sets come from different metadata sources (for example,
// one registry authored in code and another loaded from a YAML document).
package mux
