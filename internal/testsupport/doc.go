// Package testsupport provides fixtures shared by package tests: text
// corpora on disk and temp-directory configurations.
package testsupport
