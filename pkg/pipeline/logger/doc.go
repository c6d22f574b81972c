// Package logger provides a pipeline option logging the life of a pipeline with zerolog.
//
// Steps are logged at debug level when they are added, every step output at trace level,
// and the end of each force at info level.
package logger
