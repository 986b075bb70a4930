// Package logger provides a small factory around log/slog plus attribute
// helpers shared by the rest of the module.
//
// Construction is option based:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "sessionkit")),
//	)
//
// Components accept a *slog.Logger via options and default to
// logger.Discard(), keeping logging opt-in for library consumers.
package logger
