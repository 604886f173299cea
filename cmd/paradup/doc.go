// Package main hosts the paradup CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into duplicate
// paragraph scans and configuration scaffolding. It centralizes configuration
// resolution, flag precedence, and logger construction so the scan command
// only has to call the detector and choose a renderer.
//
// Keep this package lean: add new behaviour to the internal packages first,
// then surface it through dedicated commands or flags here.
package main
