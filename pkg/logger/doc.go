// Package logger builds *slog.Logger instances for kbooks services.
//
// New takes functional options selecting the output format, level, static
// attributes and context extractors. Extractors run on every record, which
// is how request ids set by the requestid middleware end up in handler logs
// without threading a logger through each call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "kbooks"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "registration link issued",
//	    logger.Flow("registration"),
//	    logger.Email(email),
//	)
//
// Attribute helpers (Error, Component, Flow, Outcome, ...) keep key names
// consistent across packages. Error and UserID return an empty attribute for
// nil input, so they can be passed unconditionally.
package logger
