// Package authz holds the request principal and the checks built on it.
//
// Core concepts:
//
//   - Principal: A single identity per request (System/User).
//     Set via NewSystemContext, NewUserContext, or WithPrincipal.
//
//   - Tokens: JWT bearer tokens are issued and verified by Authenticator and
//     carry the user ID and the admin flag.
//
//   - Element requests: IsElementRequestByAdmin decides whether an admin is
//     previewing a specific data object, which lets unpublished objects through.
package authz
