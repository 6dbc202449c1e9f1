// Package specgen is the runtime support library of Go code generated by
// specgen.
//
// Generated types serialize into structured values: map[string]any for
// structs and unions, []any for lists and bytes, strings for bigint and
// decimal values, and plain scalars otherwise. The structured value can be
// handed to any self-describing encoder, see the codec package.
//
// Generated deserializers are built from the decode combinators of this
// package:
//
//	func DeserializeUser(v any) (out User, err error) {
//		m, err := specgen.DecodeObject(v)
//		if err != nil {
//			return out, specgen.WrapDecl("User", err)
//		}
//		if out.Name, err = specgen.OptionalField(m, "name", specgen.DecodeOptional(specgen.DecodeString)); err != nil {
//			return out, specgen.WrapDecl("User", err)
//		}
//		return out, nil
//	}
//
// Presence of an optional value is decided by key existence. A null value
// is the explicit absent marker, and present zero values (0, "", empty
// collections) decode as present.
//
// Decoding failures are returned as *DecodeError values matching one of the
// sentinel errors ErrMissingRequiredField, ErrUnknownVariant,
// ErrMalformedNumeric, ErrMalformedBytes and ErrTypeMismatch.
package specgen
