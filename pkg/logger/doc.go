// Package logger provides a factory for configured slog.Logger instances
// plus shared attribute helpers for consistent log keys across the toolkit.
//
// Basic usage:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("mailer"),
//	)
//
//	log.Info("email sent",
//	    logger.Provider("resend"),
//	    logger.Recipients(3),
//	)
//
// Attribute helpers keep keys stable so log aggregation queries do not break
// when call sites change.
package logger
