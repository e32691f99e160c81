package keymanager

// Factory converts a validated key of type K into an instance of the
// primitive interface P. The manager validates the key before handing it
// over, so a factory may assume structural validity, though it is free to
// re-check the fields it depends on.
//
// Implementations must be stateless apart from allocating the returned
// primitive, must not retain the key beyond the call, and must be safe for
// concurrent use. A factory fails only for construction-specific reasons
// (e.g. the platform is missing a required cipher); routing a request to
// the wrong factory cannot happen, the registry dispatches on P.
type Factory[K Key, P any] interface {
	Primitive(key K) (P, error)
}

// FactoryFunc adapts an ordinary function to a Factory, in the manner of
// http.HandlerFunc.
type FactoryFunc[K Key, P any] func(key K) (P, error)

// Primitive calls fn(key).
func (fn FactoryFunc[K, P]) Primitive(key K) (P, error) {
	return fn(key)
}
