// Package backend implements the mobile-backend collaborator over HTTP: it
// establishes the backend session and performs the token exchange that
// trades app credentials for an authorization header plus the resolved
// provider identity.
package backend
