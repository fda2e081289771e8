// Package versiontable builds the cloud-event-proxy compatibility table. It
// sequences the main branch, remaining branches, recent releases, and
// version-shaped tags, extracts dependency versions from each ref's manifest,
// and renders the result as a markdown table. Refs are emitted at most once;
// whichever phase reaches a name first owns its row.
package versiontable
