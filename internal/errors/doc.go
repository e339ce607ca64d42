// Package errors provides the structured error type used across pancasting.
//
// Errors carry a Code, a message, an optional cause and optional metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the original code unless one is given explicitly:
//
//	if err := kv.Set(ctx, key, data); err != nil {
//	    return errors.Wrap(err, "failed to persist session")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // treat as absent
//	}
//
// Field validation is accumulated with a ValidationBuilder and turned into a
// single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", name, vb)
//	errors.ValidateRange("historyMaxSize", size, 1, 1000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines:
//   - Storage backends return NotFound for missing keys and wrap driver errors.
//   - Engines return FailedPrecondition when a transition is not allowed.
//   - Conversion returns InvalidArgument for an unknown edition tag.
//   - The character store never returns storage errors; it records them on its
//     error field instead.
package errors
