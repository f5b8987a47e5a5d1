// Package app contains the core application logic: the App struct, its
// logger, and the extraction lifecycle that discovers formula files, parses
// them concurrently, and emits the resulting records. It is decoupled from
// any specific entrypoint like a CLI.
package app
