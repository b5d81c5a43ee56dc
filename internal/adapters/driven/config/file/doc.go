// Package file provides file-based configuration loading.
//
// Configuration lives in a TOML file under the stopline config directory
// (~/.stopline by default). Values can be overridden through STOPLINE_*
// environment variables, which are also read from a .env file when one is
// present in the working directory.
package file
