// Package errors provides structured errors for keep-objectives.
//
// Every error carries a Code, a short message and optional metadata. Codes
// survive wrapping, so callers deep in the stack can classify a failure
// without string matching.
//
// # Basic Usage
//
//	err := errors.NotFoundf("game %s is not registered", id)
//	err := errors.OutOfRangef("token %s needs %d candidates", token, n).
//	    WithMeta("token", token)
//
//	if err := loadSettings(); err != nil {
//	    return errors.Wrap(err, "failed to load settings")
//	}
//
// # Checking
//
//	if errors.IsOutOfRange(err) { ... }
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("game_id", input.GameID, vb)
//	errors.ValidateEnum("log_mode", cfg.LogMode, modes, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Entities return InvalidArgument for malformed input and Internal for
// authoring defects in static tables. Orchestrators wrap lower errors with
// context and return NotFound for unknown games or profiles. The CLI maps
// codes to process exit statuses with Code.ExitCode.
package errors
