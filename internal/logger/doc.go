// Package logger provides structured logging built on Zap.
// It manages a package-wide logger with an adjustable level, supports
// carrying a logger through a context, and offers plain, formatted and
// key-value logging variants.
package logger
