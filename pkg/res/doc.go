// Package res defines Result[T, E], an immutable two-variant value holding
// either a success payload or an error payload.
//
// Construction goes only through Ok/Err (or the error-fixed Success/Fail),
// so exactly one variant is ever active. The zero value is an empty sentinel
// that fails fast on MustValue/MustErr.
//
// Access paths, from sanctioned to last resort:
// - solo.Match: total handling of both variants
// - TryValue/TryErr: comma-ok probes
// - ValueOr: fallback extraction
// - MustValue/MustErr: panic with *StateError on the wrong variant
package res
