// Package report renders duplicate scan results for people and machines.
//
// Text rendering prints one block per duplicated paragraph and distinguishes
// an empty scan root from a scan that found nothing shared. JSON rendering is
// deterministic: keys are sorted, file lists are already sorted by the
// detector, and HTML characters are left unescaped so paragraph text
// round-trips verbatim. WriteFile replaces the destination atomically while
// holding an advisory lock, so a failed or concurrent run never leaves a
// truncated report behind. The lock is a <path>.lock sidecar that stays next
// to the report.
package report
