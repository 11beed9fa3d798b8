// Package logger provides a small factory around log/slog plus attribute
// helpers for logging constrained values and their violations.
//
// New builds a *slog.Logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the handler.
//     FormatConsole (github.com/phsym/console-slog) and FormatDev
//     (github.com/golang-cz/devslog) are meant for terminals.
//   - WithLevel sets the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue add attributes taken from the
//     context of each record.
//   - WithViolationDetails expands logged errors that carry a constraint
//     violation into structured groups (github.com/samber/slog-formatter).
//
// Every constrained value implements slog.LogValuer, so passing one to a
// logger records the inner value rather than the wrapper struct.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	if _, err := bounded.New[Score](input); err != nil {
//	    log.WarnContext(ctx, "rejected score", logger.Violation(err))
//	    // violation.kind=TooHigh violation.message="11 is too high (range: -10..10)"
//	    // violation.max=10 violation.min=-10 violation.value=11
//	}
//
// # Error Handling
//
// Error, Errors and Violation return an empty Attr when there is nothing to
// record, which slog drops, so they can be passed without a nil check.
package logger
