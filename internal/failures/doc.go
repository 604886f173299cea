// Package failures defines the error taxonomy shared by the scan pipeline.
//
// Every failure the detector surfaces is tagged with one of four sentinel
// markers so callers can decide between degrading (missing root, unreadable
// file) and aborting (bad arguments, reserved match modes) with errors.Is.
// Use Wrap when returning failures so messages keep the stage and operation
// that produced them.
package failures
