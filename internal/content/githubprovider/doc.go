// Package githubprovider implements content.Provider against the GitHub
// REST contents API, for reviewing pull requests without a local
// checkout.
//
// Requests carry a bearer token from GITHUB_TOKEN and retry on HTTP 429
// with exponential backoff; HTTP 401/403 surface as
// [wverrors.AuthError], and HTTP 404 is reported as absence per the
// ContentProvider contract.
package githubprovider
