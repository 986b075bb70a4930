// Package facebook supplies the Facebook side of the social-login
// integration: the provider configuration the session coordinator validates
// (app id, display name, callback URL schemes) and an OAuth adapter for
// deployments that exchange the login code directly against the Graph API.
package facebook
