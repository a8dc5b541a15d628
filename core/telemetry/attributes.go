package telemetry

import "go.opentelemetry.io/otel/attribute"

// Span attributes attached to dispatch spans.

func ClassAttribute(name string) attribute.KeyValue {
	return attribute.String("vmbind.class", name)
}

func MethodAttribute(name string) attribute.KeyValue {
	return attribute.String("vmbind.method", name)
}

func OverloadAttribute(idx int) attribute.KeyValue {
	return attribute.Int("vmbind.overload", idx)
}

func PermutationAttribute(idx int) attribute.KeyValue {
	return attribute.Int("vmbind.permutation", idx)
}
