// Package githubapi provides a minimal REST client for the GitHub endpoints
// the version table needs: paged branch listings, release and tag listings,
// and single-file content retrieval at a ref. Requests carry a bounded
// timeout, a cached DNS resolver, and an optional bearer token sourced from
// the environment.
package githubapi
